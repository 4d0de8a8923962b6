package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"members-service/internal/auth"
	"members-service/internal/middleware"
	"members-service/internal/user"
)

type setRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) Promote(c *gin.Context) {
	h.setRole(c, user.RoleAdmin)
}

func (h *Handler) Demote(c *gin.Context) {
	h.setRole(c, user.RoleUser)
}

// setRole mutates the target's role of record. Sessions the target
// already holds keep their snapshot until re-login.
func (h *Handler) setRole(c *gin.Context, role user.Role) {
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	sess, _ := middleware.SessionFromContext(c.Request.Context())

	err := h.auth.SetRole(c.Request.Context(), sess, req.Email, role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		case errors.Is(err, auth.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		case errors.Is(err, auth.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "set role", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "role_updated",
		"email":  req.Email,
		"role":   role,
	})
}
