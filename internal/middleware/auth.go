package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"members-service/internal/auth"
	"members-service/internal/logger"
	"members-service/internal/session"
	"members-service/internal/user"
)

// unexported, collision-proof context key
type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// SessionFromContext extracts the authenticated session from context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

type AuthMiddleware struct {
	store   session.Store
	cookie  session.CookieOptions
	ttl     time.Duration
	sliding bool
}

func NewAuthMiddleware(
	store session.Store,
	cookie session.CookieOptions,
	ttl time.Duration,
	sliding bool,
) *AuthMiddleware {
	return &AuthMiddleware{
		store:   store,
		cookie:  cookie,
		ttl:     ttl,
		sliding: sliding,
	}
}

// RequireSession loads the session named by the cookie and attaches it
// to the request context. A missing, unknown, or expired session is
// not an error page: the client is sent to the public login surface.
func (a *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			redirectToLogin(c)
			return
		}

		sess, err := a.store.Get(c.Request.Context(), cookie.Value)
		if err != nil {
			logger.Error("session lookup failed", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal error",
			})
			return
		}
		if sess == nil {
			redirectToLogin(c)
			return
		}

		// guard the window between expiry and store eviction
		if sess.Expired(time.Now()) {
			_ = a.store.Delete(c.Request.Context(), sess.ID)
			redirectToLogin(c)
			return
		}

		if a.sliding {
			sess.ExpiresAt = time.Now().Add(a.ttl)
			if err := a.store.Update(c.Request.Context(), *sess); err != nil {
				logger.Error("session renewal failed", map[string]any{
					"error": err.Error(),
				})
			} else {
				a.cookie.Issue(c.Writer, sess.ID, sess.ExpiresAt)
			}
		}

		ctx := context.WithValue(c.Request.Context(), sessionKey, sess)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole gates a route on the session's role snapshot. The deny
// surface is a 403, distinguishable from the not-authenticated
// redirect issued by RequireSession.
func (a *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c.Request.Context())
		if !ok {
			redirectToLogin(c)
			return
		}

		if !auth.Authorize(sess, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden",
			})
			return
		}

		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
