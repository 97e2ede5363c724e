package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/danielkjellid/hue/pkg/router"
)

// CSRFCookie ensures every response carries a CSRF token cookie. The token
// is picked up by the router's default CSRFTokenFunc and rendered into
// forms and the layout's hx-headers attribute.
//
// Verification of submitted tokens is left to the application; this
// middleware only guarantees a token exists.
func CSRFCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(router.CSRFCookieName); err != nil {
			token := newCSRFToken()
			cookie := &http.Cookie{
				Name:     router.CSRFCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: false, // read by htmx via hx-headers
				SameSite: http.SameSiteLaxMode,
			}
			http.SetCookie(w, cookie)
			r.AddCookie(cookie)
		}
		next.ServeHTTP(w, r)
	})
}

func newCSRFToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
