// Package sessioncookie carries the anonymous practice session id.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/numerals.space/internal/platform/id"
	"github.com/louisbranch/numerals.space/internal/platform/requestctx"
)

// Name is the practice session cookie name.
const Name = "ns_practice"

const maxAge = 90 * 24 * time.Hour

// Read returns the session id when the cookie carries a valid one.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if !id.Valid(value) {
		return "", false
	}
	return value, true
}

// Write sets the session cookie.
func Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   r != nil && r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// Ensure returns the request session id, issuing a new one when missing.
func Ensure(w http.ResponseWriter, r *http.Request) string {
	if sessionID, ok := Read(r); ok {
		return sessionID
	}
	sessionID := id.NewID()
	Write(w, r, sessionID)
	return sessionID
}

// Middleware ensures a session for every request it serves and stores the
// id on the request context.
func Middleware(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := Ensure(w, r)
		next.ServeHTTP(w, r.WithContext(requestctx.WithSessionID(r.Context(), sessionID)))
	})
}

// FromRequest returns the session id stored by Middleware, or "" outside it.
func FromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	return requestctx.SessionIDFromContext(r.Context())
}
