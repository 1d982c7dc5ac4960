package routers

import (
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/controllers"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/middlewares"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleSuperadmin)).Get("/systeminfo", adminController.SystemInfo)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleSuperadmin, constvars.RoleManager)).Get("/stats", adminController.Stats)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleSuperadmin)).Get("/users", adminController.ListUsers)
}
