package middleware

import "net/http"

// InternalAuth guards the API with the shared internal token. Real user
// auth lives upstream; this service is only reachable by the portal backend.
func InternalAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Internal-Token") != token {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
