package session

import (
	"net/http"
	"time"
)

// CookieName is the only session-identifying value the client holds.
const CookieName = "__Host-session"

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
	Domain   string // should usually be empty for __Host- cookies
}

func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/" // required for __Host-
	}
	if !o.HttpOnly {
		o.HttpOnly = true
	}
	return o
}

// Issue sends the session cookie to the client. The cookie value is
// the opaque session ID, nothing else.
func (o CookieOptions) Issue(w http.ResponseWriter, sessionID string, expiresAt time.Time) {
	o = o.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     o.Path,
		Domain:   o.Domain,
		Expires:  expiresAt,
		HttpOnly: o.HttpOnly,
		Secure:   o.Secure,
		SameSite: o.SameSite,
	})
}

// Clear removes the session cookie from the client.
func (o CookieOptions) Clear(w http.ResponseWriter) {
	o = o.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   -1,
		HttpOnly: o.HttpOnly,
		Secure:   o.Secure,
		SameSite: o.SameSite,
	})
}
