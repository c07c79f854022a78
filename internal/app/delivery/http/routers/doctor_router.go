package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/doctors"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Use(mw.Authenticate)

	router.Get("/", doctorController.ListDoctors)
	router.Get("/{doctorID}", doctorController.GetDoctor)
	router.Get("/{doctorID}/slots", doctorController.GetAvailableSlots)
	router.With(mw.RequireRole(constvars.RoleDoctor)).Put("/profile", doctorController.UpsertProfile)
}
