package healthreports

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const reportObjectPrefix = "health-report"

type healthReportUsecase struct {
	HealthReportRepository contracts.HealthReportRepository
	Storage                contracts.Storage
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewHealthReportUsecase(
	healthReportRepository contracts.HealthReportRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.HealthReportUsecase {
	return &healthReportUsecase{
		HealthReportRepository: healthReportRepository,
		Storage:                storage,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// UploadHealthReport stores the document in object storage first, then
// records the metadata. An orphaned object from a failed metadata write
// is harmless; an orphaned record pointing at nothing is not.
func (uc *healthReportUsecase) UploadHealthReport(ctx context.Context, session *models.Session, input *contracts.UploadHealthReportInput) (*responses.HealthReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.UploadHealthReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	maxSize := uc.InternalConfig.App.ReportUploadMaxSizeInMB * 1024 * 1024
	if input.FileSize <= 0 || input.FileSize > maxSize {
		return nil, exceptions.ErrFileTooLarge(fmt.Errorf("file size %d exceeds limit %d", input.FileSize, maxSize))
	}

	objectName := fmt.Sprintf("%s/%s", reportObjectPrefix,
		utils.GenerateFileName(input.Metadata.ReportType, session.UserID, filepath.Ext(input.FileName)))
	if err := uc.Storage.UploadFile(ctx, input.File, objectName, input.FileSize, input.ContentType); err != nil {
		return nil, err
	}

	now := time.Now()
	report := &models.HealthReport{
		PatientID:   session.UserID,
		Title:       input.Metadata.Title,
		ReportType:  input.Metadata.ReportType,
		Description: input.Metadata.Description,
		ObjectName:  objectName,
		FileSize:    input.FileSize,
		ContentType: input.ContentType,
		ReportDate:  input.Metadata.ReportDate,
		UploadedBy:  session.UserID,
	}
	report.CreatedAt = now
	report.UpdatedAt = now

	reportID, err := uc.HealthReportRepository.CreateHealthReport(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = reportID

	return uc.buildHealthReportResponse(ctx, report, true), nil
}

func (uc *healthReportUsecase) GetHealthReport(ctx context.Context, session *models.Session, reportID string) (*responses.HealthReport, error) {
	report, err := uc.HealthReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrHealthReportNotExist(fmt.Errorf("health report %s not found", reportID))
	}
	if report.PatientID != session.UserID && !session.IsAdmin() {
		return nil, exceptions.ErrRoleForbidden(nil)
	}
	return uc.buildHealthReportResponse(ctx, report, true), nil
}

func (uc *healthReportUsecase) ListMyHealthReports(ctx context.Context, session *models.Session, page, pageSize int) ([]responses.HealthReport, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.ListMyHealthReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	reportModels, total, err := uc.HealthReportRepository.FindByPatientID(ctx, session.UserID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	// List responses skip the presigned URL; clients fetch it per report.
	result := make([]responses.HealthReport, 0, len(reportModels))
	for i := range reportModels {
		result = append(result, *uc.buildHealthReportResponse(ctx, &reportModels[i], false))
	}
	return result, total, nil
}

func (uc *healthReportUsecase) buildHealthReportResponse(ctx context.Context, report *models.HealthReport, withURL bool) *responses.HealthReport {
	dto := &responses.HealthReport{
		ID:          report.ID,
		PatientID:   report.PatientID,
		Title:       report.Title,
		ReportType:  report.ReportType,
		Description: report.Description,
		ReportDate:  report.ReportDate,
		FileSize:    report.FileSize,
		ContentType: report.ContentType,
	}
	if !report.CreatedAt.IsZero() {
		dto.CreatedAt = report.CreatedAt.Format(time.RFC3339)
	}
	if withURL && report.ObjectName != "" {
		expiry := time.Duration(uc.InternalConfig.App.ReportPresignedUrlExpiryInHour) * time.Hour
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, report.ObjectName, expiry)
		if err != nil {
			uc.Log.Warn("healthReportUsecase failed to presign report object",
				zap.String("object_name", report.ObjectName),
				zap.Error(err),
			)
		} else {
			dto.DownloadURL = url
		}
	}
	return dto
}
