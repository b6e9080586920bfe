package middleware

import (
	"net/http"
	"strconv"
	"time"

	"commsagent/internal/metrics"
)

// statusRecorder captures the response status for metric labels.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics middleware records request duration per method, pattern, and
// status code.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// Use the matched route pattern rather than the raw path to keep
		// label cardinality bounded.
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(r.Method, path, strconv.Itoa(rec.status), time.Since(start))
	})
}
