// Package authapi implements the session lifecycle endpoints: register,
// login, refresh, logout, plus the current-user and role-gated admin
// routes.
package authapi

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/wellmind-app/backend/internal/auth"
	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/models"
)

var (
	logger = log.With().Str("component", "authapi").Logger()
)

type Handlers struct {
	auth *auth.Authenticator
	db   *gormw.DB
}

func New(a *auth.Authenticator, db *gormw.DB) *Handlers {
	return &Handlers{
		auth: a,
		db:   db,
	}
}

func (h *Handlers) RegisterHandlers(rg *gin.RouterGroup, mw *middleware.AuthMiddleware) {
	authRoutes := rg.Group("/auth")
	{
		authRoutes.POST("/register", h.handleRegister)
		authRoutes.POST("/login", h.handleLogin)
		authRoutes.POST("/refresh", h.handleRefresh)
		authRoutes.POST("/logout", h.handleLogout)
		authRoutes.GET("/me", mw.RequireAuth(), h.handleMe)
	}

	adminRoutes := rg.Group("/admin", mw.RequireAuth(), mw.RequireRole(models.RoleAdmin))
	{
		adminRoutes.GET("/users", h.handleListUsers)
	}
}
