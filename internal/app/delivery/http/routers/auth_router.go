package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.RegisterUser)
	router.With(mw.LoginRateLimit).Post("/login", authController.LoginUser)
	router.With(mw.LoginRateLimit).Post("/phone-login", authController.LoginUserByPhone)
	router.Post("/verify-otp", authController.VerifyOTP)
	router.Post("/resend-otp", authController.ResendOTP)
	router.With(mw.Authenticate).Post("/logout", authController.LogoutUser)
}
