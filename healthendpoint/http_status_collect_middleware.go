package healthendpoint

import (
	"net/http"

	"github.com/gorilla/mux"
)

const unnamedRoute = "unknown"

type HTTPStatusCollectMiddleware struct {
	httpStatusCollector HTTPStatusCollector
}

func NewHTTPStatusCollectMiddleware(httpStatusCollector HTTPStatusCollector) *HTTPStatusCollectMiddleware {
	return &HTTPStatusCollectMiddleware{
		httpStatusCollector: httpStatusCollector,
	}
}

// Collect tracks in-flight requests and counts responses by mux route name.
func (h *HTTPStatusCollectMiddleware) Collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.httpStatusCollector.IncConcurrentHTTPRequest()
		defer h.httpStatusCollector.DecConcurrentHTTPRequest()

		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.httpStatusCollector.RecordResponse(routeName(r), r.Method, rw.statusCode)
	})
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}
	return unnamedRoute
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.statusCode = code
	s.ResponseWriter.WriteHeader(code)
}
