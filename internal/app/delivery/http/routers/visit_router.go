package routers

import (
	"fmt"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/controllers"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/middlewares"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachVisitRoutes(router chi.Router, middlewares *middlewares.Middlewares, visitController *controllers.VisitController) {
	router.With(middlewares.Authenticate).Post("/", visitController.CreateVisit)
	router.With(middlewares.Authenticate).Get("/", visitController.FindAll)
	router.With(middlewares.Authenticate).Get("/my-location", visitController.FindByUserLocation)
	router.With(middlewares.Authenticate).Get("/summary", visitController.EmployeeSummary)
	router.With(middlewares.Authenticate).Get("/export/excel", visitController.ExportExcel)
	router.With(middlewares.Authenticate).Get(fmt.Sprintf("/{%s}", constvars.URLParamVisitID), visitController.FindByID)
	router.With(middlewares.Authenticate).Put(fmt.Sprintf("/{%s}", constvars.URLParamVisitID), visitController.UpdateVisit)
	router.With(middlewares.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamVisitID), visitController.DeleteVisit)
	router.With(middlewares.Authenticate).Post(fmt.Sprintf("/{%s}/attachments", constvars.URLParamVisitID), visitController.UploadAttachment)
}
