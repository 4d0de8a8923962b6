package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"members-service/internal/auth"
	"members-service/internal/auth/handler"
	"members-service/internal/config"
	"members-service/internal/logger"
	"members-service/internal/middleware"
	"members-service/internal/session"
	"members-service/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := user.NewPostgresStore(infra.DB)
	sessionStore := session.NewRedisStore(infra.Redis.Client)

	authService := auth.NewService(userStore, sessionStore, cfg.SessionTTL)

	if err := seedAdmin(ctx, cfg, userStore); err != nil {
		return nil, nil, err
	}

	cookieOpts := session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := handler.NewHandler(authService, cookieOpts)
	authMiddleware := middleware.NewAuthMiddleware(
		sessionStore,
		cookieOpts,
		cfg.SessionTTL,
		cfg.SessionSliding,
	)

	// ----------------------------
	// Router
	// ----------------------------

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	// ----------------------------
	// Members Routes (any session)
	// ----------------------------

	members := router.Group("/")
	members.Use(authMiddleware.RequireSession())

	members.GET("/members", authHandler.Members)

	// ----------------------------
	// Admin Routes (session + admin role)
	// ----------------------------

	admin := router.Group("/")
	admin.Use(
		authMiddleware.RequireSession(),
		authMiddleware.RequireRole(user.RoleAdmin),
	)

	admin.GET("/admin", authHandler.Admin)
	admin.POST("/promote", authHandler.Promote)
	admin.POST("/demote", authHandler.Demote)

	return router, infra.Close, nil
}

// seedAdmin promotes the configured bootstrap account, if it already
// exists. Without it a fresh deployment has no way to mint the first
// admin.
func seedAdmin(ctx context.Context, cfg config.Config, users user.Store) error {
	if cfg.AdminEmail == "" {
		return nil
	}

	err := users.UpdateRole(ctx, cfg.AdminEmail, user.RoleAdmin)
	if errors.Is(err, user.ErrNotFound) {
		logger.Warn("admin bootstrap account not registered yet", map[string]any{
			"email": cfg.AdminEmail,
		})
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("admin bootstrap account promoted", map[string]any{
		"email": cfg.AdminEmail,
	})
	return nil
}
