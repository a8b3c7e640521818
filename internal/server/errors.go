package server

import "errors"

// errNoHTTPHandler is returned by NewServer when there is nothing to serve:
// no HTTP handler was built or no listen address is configured.
var errNoHTTPHandler = errors.New("server has no http handler to serve")
