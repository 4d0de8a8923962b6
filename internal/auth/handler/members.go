package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"members-service/internal/middleware"
)

// Members serves the members-only content. It sits behind
// RequireSession, which guarantees a session in the context.
func (h *Handler) Members(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "welcome to the members area, " + sess.User.Name,
		"user":    sess.User,
	})
}

// Admin serves the admin-only content, behind RequireSession and
// RequireRole(admin).
func (h *Handler) Admin(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "admin area",
		"user":    sess.User,
	})
}
