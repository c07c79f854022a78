package healthreports

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// uploads run longer than the usual controller deadline
const uploadTimeout = 30 * time.Second

type HealthReportController struct {
	Log                 *zap.Logger
	HealthReportUsecase contracts.HealthReportUsecase
	MaxUploadSizeInMB   int64
}

func NewHealthReportController(logger *zap.Logger, healthReportUsecase contracts.HealthReportUsecase, maxUploadSizeInMB int64) *HealthReportController {
	return &HealthReportController{
		Log:                 logger,
		HealthReportUsecase: healthReportUsecase,
		MaxUploadSizeInMB:   maxUploadSizeInMB,
	}
}

func (ctrl *HealthReportController) UploadHealthReport(w http.ResponseWriter, r *http.Request) {
	maxBytes := ctrl.MaxUploadSizeInMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	metadata := &requests.UploadHealthReport{
		Title:       r.FormValue("title"),
		ReportType:  r.FormValue("report_type"),
		Description: r.FormValue("description"),
		ReportDate:  r.FormValue("report_date"),
	}
	if err := utils.ValidateStruct(metadata); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	input := &contracts.UploadHealthReportInput{
		Metadata:    metadata,
		File:        file,
		FileName:    header.Filename,
		FileSize:    header.Size,
		ContentType: header.Header.Get(constvars.HeaderContentType),
	}

	ctx, cancel := context.WithTimeout(r.Context(), uploadTimeout)
	defer cancel()

	result, err := ctrl.HealthReportUsecase.UploadHealthReport(ctx, session, input)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.HealthReportUploadSuccess, result)
}

func (ctrl *HealthReportController) GetHealthReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportID")
	if reportID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "reportID"))
		return
	}

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HealthReportUsecase.GetHealthReport(ctx, session, reportID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthReportGetSuccess, result)
}

func (ctrl *HealthReportController) ListMyHealthReports(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.HealthReportUsecase.ListMyHealthReports(ctx, session, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.HealthReportListSuccess, pagination, result)
}
