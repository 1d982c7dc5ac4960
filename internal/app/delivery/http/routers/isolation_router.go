package routers

import (
	"fmt"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/controllers"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/middlewares"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachIsolationRoutes(router chi.Router, middlewares *middlewares.Middlewares, isolationController *controllers.IsolationController) {
	router.With(middlewares.Authenticate).Post("/", isolationController.CreateIsolation)
	router.With(middlewares.Authenticate).Get("/", isolationController.FindAll)
	router.With(middlewares.Authenticate).Get("/my-location", isolationController.FindByUserLocation)
	router.With(middlewares.Authenticate).Get(fmt.Sprintf("/{%s}", constvars.URLParamIsolationID), isolationController.FindByID)
	router.With(middlewares.Authenticate).Put(fmt.Sprintf("/{%s}", constvars.URLParamIsolationID), isolationController.UpdateIsolation)
	router.With(middlewares.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamIsolationID), isolationController.DeleteIsolation)
}
