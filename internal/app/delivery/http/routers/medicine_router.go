package routers

import (
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/services/core/medicines"
	"mediconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, mw *middlewares.Middlewares, medicineController *medicines.MedicineController) {
	router.Use(mw.Authenticate)

	router.Get("/", medicineController.ListMedicines)
	router.Get("/{medicineID}", medicineController.GetMedicine)
	router.With(mw.RequireRole(constvars.RoleAdmin)).Post("/", medicineController.CreateMedicine)
	router.With(mw.RequireRole(constvars.RoleAdmin)).Put("/{medicineID}", medicineController.UpdateMedicine)
}
