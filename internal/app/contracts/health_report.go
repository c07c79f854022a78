package contracts

import (
	"context"
	"io"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type UploadHealthReportInput struct {
	Metadata    *requests.UploadHealthReport
	File        io.Reader
	FileName    string
	FileSize    int64
	ContentType string
}

type HealthReportUsecase interface {
	UploadHealthReport(ctx context.Context, session *models.Session, input *UploadHealthReportInput) (*responses.HealthReport, error)
	GetHealthReport(ctx context.Context, session *models.Session, reportID string) (*responses.HealthReport, error)
	ListMyHealthReports(ctx context.Context, session *models.Session, page, pageSize int) ([]responses.HealthReport, int, error)
}

type HealthReportRepository interface {
	CreateHealthReport(ctx context.Context, reportModel *models.HealthReport) (reportID string, err error)
	FindByID(ctx context.Context, reportID string) (*models.HealthReport, error)
	FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.HealthReport, int, error)
}
