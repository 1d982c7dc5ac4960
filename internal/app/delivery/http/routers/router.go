package routers

import (
	"fmt"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/config"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/controllers"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	visitController *controllers.VisitController,
	hospitalController *controllers.HospitalController,
	isolationController *controllers.IsolationController,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, authController)
			})

			r.Route("/visits", func(r chi.Router) {
				attachVisitRoutes(r, middlewares, visitController)
			})

			r.Route("/hospitals", func(r chi.Router) {
				attachHospitalRoutes(r, middlewares, hospitalController)
			})

			r.Route("/isolations", func(r chi.Router) {
				attachIsolationRoutes(r, middlewares, isolationController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, adminController)
			})
		})
	})
}
