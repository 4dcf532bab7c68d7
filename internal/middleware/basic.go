package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
)

// DiagnosticPath is the data-wipe endpoint that always skips the Basic gate.
const DiagnosticPath = "/testing/all-data"

// AdminCredentials is the static administrator login/password pair.
type AdminCredentials struct {
	Login    string
	Password string
}

// BasicAuth returns middleware that requires the admin credentials via HTTP
// Basic auth. Read-only requests (GET, HEAD) and the diagnostic path pass
// without a check.
func BasicAuth(admin AdminCredentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.URL.Path == DiagnosticPath {
				next.ServeHTTP(w, r)
				return
			}

			encoded, found := strings.CutPrefix(r.Header.Get("Authorization"), "Basic ")
			if !found {
				reject(w, r, "basic", "missing")
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				reject(w, r, "basic", "malformed")
				return
			}

			login, password, found := strings.Cut(string(decoded), ":")
			if !found || !admin.matches(login, password) {
				reject(w, r, "basic", "invalid")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// matches compares both parts without short-circuiting.
func (a AdminCredentials) matches(login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(a.Login))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password))
	return loginOK&passwordOK == 1
}
