package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"members-service/internal/logger"
	"members-service/internal/session"
)

// Logout destroys the session named by the cookie and clears the
// cookie. It succeeds even when no session exists.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if err := h.auth.DestroySession(c.Request.Context(), cookie.Value); err != nil {
			// best-effort: the cookie is cleared either way and the
			// store evicts the session at its TTL
			logger.Warn("session destroy failed", map[string]any{
				"error": err.Error(),
			})
		}
	}

	h.cookie.Clear(c.Writer)

	c.Status(http.StatusNoContent)
}
