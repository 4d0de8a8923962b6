package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"members-service/internal/auth"
	"members-service/internal/logger"
	"members-service/internal/session"
)

type Handler struct {
	auth   *auth.Service
	cookie session.CookieOptions
}

func NewHandler(authService *auth.Service, cookie session.CookieOptions) *Handler {
	return &Handler{
		auth:   authService,
		cookie: cookie,
	}
}

// RegisterRoutes wires the public routes. Gated routes are grouped
// behind the auth middleware in the app wiring.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Landing)
	r.GET("/login", h.LoginPage)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	for _, route := range r.Routes() {
		logger.Info("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}
}

// Landing is the public landing surface. Denied unauthenticated
// requests land here (via /login), never on an error page.
func (h *Handler) Landing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "members-service",
		"login":   "POST /login",
		"signup":  "POST /signup",
	})
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "log in by sending email and password to POST /login",
	})
}

// bindingErrors turns gin binding failures into a field->constraint
// map the client can act on.
func bindingErrors(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
		return gin.H{"error": "invalid request", "fields": fields}
	}
	return gin.H{"error": "invalid request"}
}

// internalError logs the unclassified failure and hides its detail
// from the client.
func internalError(c *gin.Context, op string, err error) {
	logger.Error(op+" failed", map[string]any{
		"error": err.Error(),
	})
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
