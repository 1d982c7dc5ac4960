package routers

import (
	"fmt"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/controllers"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/middlewares"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, middlewares *middlewares.Middlewares, hospitalController *controllers.HospitalController) {
	router.With(middlewares.Authenticate).Post("/", hospitalController.CreateHospital)
	router.With(middlewares.Authenticate).Get("/", hospitalController.FindAll)
	router.With(middlewares.Authenticate).Get("/my-location", hospitalController.FindByUserLocation)
	router.With(middlewares.Authenticate).Get(fmt.Sprintf("/{%s}", constvars.URLParamHospitalID), hospitalController.FindByID)
	router.With(middlewares.Authenticate).Put(fmt.Sprintf("/{%s}", constvars.URLParamHospitalID), hospitalController.UpdateHospital)
	router.With(middlewares.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamHospitalID), hospitalController.DeleteHospital)
}
