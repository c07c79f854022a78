package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/appointments"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, mw *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(mw.Authenticate)

	router.With(mw.RequireRole(constvars.RolePatient)).Post("/", appointmentController.BookAppointment)
	router.Get("/my-appointments", appointmentController.ListMyAppointments)
	router.Get("/{appointmentID}", appointmentController.GetAppointment)
	router.With(mw.RequireRole(constvars.RoleDoctor)).Put("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
	router.Delete("/{appointmentID}", appointmentController.CancelAppointment)
}
