package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"members-service/internal/auth"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	sess, err := h.auth.Register(
		c.Request.Context(),
		req.Name,
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateAccount):
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		case errors.Is(err, auth.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "signup", err)
		}
		return
	}

	h.cookie.Issue(c.Writer, sess.ID, sess.ExpiresAt)

	c.JSON(http.StatusCreated, gin.H{
		"status": "registered",
		"user":   sess.User,
	})
}
