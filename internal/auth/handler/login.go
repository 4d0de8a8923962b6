package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"members-service/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	sess, err := h.auth.Authenticate(
		c.Request.Context(),
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			// one surface for unknown email and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		case errors.Is(err, auth.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "login", err)
		}
		return
	}

	h.cookie.Issue(c.Writer, sess.ID, sess.ExpiresAt)

	c.JSON(http.StatusOK, gin.H{
		"status": "logged_in",
		"user":   sess.User,
	})
}
