// Package http implements the REST API of the document keeper.
//
// Every route except the version probe and session opening requires a
// session bearer token. Document reads pass through the sensitivity gate
// of the service layer, so handlers never decide about masking
// themselves. Request tracing, access logging and gzip compression are
// applied as middleware in front of all routes.
package http
