package router

import (
	"authapi/internal/application"
	"authapi/internal/container"
	pginfra "authapi/internal/infrastructure/postgres"
	handlers "authapi/internal/interface/http"
	"authapi/internal/router/modules"
)

type AuthModuleDeps struct {
	Service *application.Service
	Handler *handlers.AuthHandler
}

func buildAuthDeps() AuthModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := application.NewService(
		repo,
		container.GetJWT(),
		container.GetRedis(),
		container.GetLogger(),
	)

	audit := pginfra.NewAuditLogger(container.GetPGPool(), container.GetLogger())
	handler := handlers.NewAuthHandler(service, container.GetLogger(), audit)

	return AuthModuleDeps{Service: service, Handler: handler}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	authDeps := buildAuthDeps()
	r.Add(modules.NewAuthModule(authDeps.Handler, container.GetJWT()))
	r.Add(modules.NewHealthModule())
}
