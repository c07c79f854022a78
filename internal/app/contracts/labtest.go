package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type LabTestUsecase interface {
	OrderLabTest(ctx context.Context, session *models.Session, request *requests.OrderLabTest) (*responses.LabTest, error)
	GetLabTest(ctx context.Context, session *models.Session, labTestID string) (*responses.LabTest, error)
	ListMyLabTests(ctx context.Context, session *models.Session, page, pageSize int) ([]responses.LabTest, int, error)
	UpdateLabTestStatus(ctx context.Context, session *models.Session, labTestID string, request *requests.UpdateLabTestStatus) (*responses.LabTest, error)
}

type LabTestRepository interface {
	CreateLabTest(ctx context.Context, labTestModel *models.LabTest) (labTestID string, err error)
	FindByID(ctx context.Context, labTestID string) (*models.LabTest, error)
	FindByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.LabTest, int, error)
	UpdateLabTest(ctx context.Context, labTestModel *models.LabTest) error
}
