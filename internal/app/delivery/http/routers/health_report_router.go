package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/healthreports"

	"github.com/go-chi/chi/v5"
)

func attachHealthReportRoutes(router chi.Router, mw *middlewares.Middlewares, healthReportController *healthreports.HealthReportController) {
	router.Use(mw.Authenticate)

	router.Post("/", healthReportController.UploadHealthReport)
	router.Get("/", healthReportController.ListMyHealthReports)
	router.Get("/{reportID}", healthReportController.GetHealthReport)
}
