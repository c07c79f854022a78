package routers

import (
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/appointments"
	"mediconnect-service/internal/app/services/core/auth"
	"mediconnect-service/internal/app/services/core/chats"
	"mediconnect-service/internal/app/services/core/doctors"
	"mediconnect-service/internal/app/services/core/healthreports"
	"mediconnect-service/internal/app/services/core/labtests"
	"mediconnect-service/internal/app/services/core/medicines"
	"mediconnect-service/internal/app/services/core/payments"
	"mediconnect-service/internal/app/services/core/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Health       *controllers.HealthController
	Auth         *auth.AuthController
	User         *users.UserController
	Doctor       *doctors.DoctorController
	Appointment  *appointments.AppointmentController
	Payment      *payments.PaymentController
	Chat         *chats.ChatController
	Medicine     *medicines.MedicineController
	LabTest      *labtests.LabTestController
	HealthReport *healthreports.HealthReportController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	ctrl *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)

	router.Get("/health", ctrl.Health.Check)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, mw, ctrl.Auth)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, mw, ctrl.User)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, mw, ctrl.Doctor)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, mw, ctrl.Appointment)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, mw, ctrl.Payment)
			})

			r.Route("/chat/conversations", func(r chi.Router) {
				attachChatRoutes(r, mw, ctrl.Chat)
			})

			r.Route("/medicines", func(r chi.Router) {
				attachMedicineRoutes(r, mw, ctrl.Medicine)
			})

			r.Route("/lab-tests", func(r chi.Router) {
				attachLabTestRoutes(r, mw, ctrl.LabTest)
			})

			r.Route("/health-reports", func(r chi.Router) {
				attachHealthReportRoutes(r, mw, ctrl.HealthReport)
			})
		})
	})
}
