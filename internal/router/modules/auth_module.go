package modules

import (
	"github.com/gin-gonic/gin"

	handlers "authapi/internal/interface/http"
	"authapi/internal/interface/middleware"
	"authapi/pkg/helpers"
)

// AuthModule wires the auth HTTP handlers into routes.
// Public: POST /auth/register, POST /auth/login
// Protected: GET /auth/profile

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/profile", m.Handler.GetProfile)
	}
}
