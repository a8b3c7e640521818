package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request logger and context with a trace id. An
// incoming X-Trace-ID is reused only when it is a well-formed UUID, so
// arbitrary client text never ends up in the logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := incomingTraceID(r)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.WithTraceID(traceID)
		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func incomingTraceID(r *http.Request) string {
	id, err := uuid.Parse(r.Header.Get(traceIDHeader))
	if err != nil {
		return ""
	}
	return id.String()
}
