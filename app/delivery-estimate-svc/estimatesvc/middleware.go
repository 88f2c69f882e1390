package estimatesvc

import (
	logger "log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

//statusWriter captures the final HTTP status code and number of bytes written
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

//Write records implicit 200 responses when handlers write without calling WriteHeader
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

//makeLoggingMiddleware logs request duration and response size, tagging each
//request with an id so storefront-side reports can be correlated with logs
func makeLoggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			log.Printf("request id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
				requestID, r.Method, r.URL.RequestURI(), sw.status, sw.bytes,
				time.Since(start).Milliseconds())
		})
	}
}
