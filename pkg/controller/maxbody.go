package controller

import "net/http"

// WithMaxBody returns a middleware that caps the size of request bodies at
// limit bytes. Reads past the limit fail and http.MaxBytesReader takes care
// of closing the connection, which keeps oversized uploads from buffering in
// memory before the handler rejects them. A non-positive limit disables the
// cap.
func WithMaxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}

			next.ServeHTTP(w, r)
		})
	}
}
