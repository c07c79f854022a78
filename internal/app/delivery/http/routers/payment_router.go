package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, mw *middlewares.Middlewares, paymentController *payments.PaymentController) {
	router.Use(mw.Authenticate)

	router.Post("/", paymentController.CreatePayment)
	router.Get("/my-payments", paymentController.ListMyPayments)
	router.Get("/{paymentID}", paymentController.GetPayment)
	router.Put("/{paymentID}/status", paymentController.UpdatePaymentStatus)
}
