package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/labtests"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLabTestRoutes(router chi.Router, mw *middlewares.Middlewares, labTestController *labtests.LabTestController) {
	router.Use(mw.Authenticate)

	router.With(mw.RequireRole(constvars.RolePatient)).Post("/", labTestController.OrderLabTest)
	router.Get("/", labTestController.ListMyLabTests)
	router.Get("/{labTestID}", labTestController.GetLabTest)
	router.Put("/{labTestID}/status", labTestController.UpdateLabTestStatus)
}
