package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, mw *middlewares.Middlewares, userController *users.UserController) {
	router.Use(mw.Authenticate)

	router.Get("/profile", userController.GetProfile)
	router.Put("/profile", userController.UpdateProfile)
}
