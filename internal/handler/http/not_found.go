package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/utils"
)

// notFound answers unknown paths and unsupported methods alike, so a
// caller cannot probe which routes exist. It is registered as both the
// NotFound and the MethodNotAllowed handler of the router.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
