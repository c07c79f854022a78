package controllers

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/utils"
	"net/http"
	"time"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, "service healthy", &responses.HealthCheck{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
