package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/google/uuid"
)

const traceIDHeader = utils.TraceIDHeader

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.WithTraceID(traceID)
		ctx = utils.WithTraceID(ctx, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
