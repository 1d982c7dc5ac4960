package routers

import (
	"fmt"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/controllers"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/middlewares"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	// Account provisioning is restricted to superadmins.
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleSuperadmin)).Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/refresh", authController.Refresh)
}

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleSuperadmin, constvars.RoleManager)).Get("/", authController.ListUsers)
	router.With(middlewares.Authenticate).Get(fmt.Sprintf("/{%s}", constvars.URLParamUserID), authController.GetUser)
	router.With(middlewares.Authenticate).Put(fmt.Sprintf("/{%s}", constvars.URLParamUserID), authController.UpdateUser)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleSuperadmin)).Delete(fmt.Sprintf("/{%s}", constvars.URLParamUserID), authController.DeleteUser)
}
