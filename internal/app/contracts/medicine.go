package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type MedicineUsecase interface {
	CreateMedicine(ctx context.Context, request *requests.CreateMedicine) (*responses.Medicine, error)
	GetMedicine(ctx context.Context, medicineID string) (*responses.Medicine, error)
	ListMedicines(ctx context.Context, request *requests.ListMedicines) ([]responses.Medicine, int, error)
	UpdateMedicine(ctx context.Context, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error)
}

type MedicineRepository interface {
	CreateMedicine(ctx context.Context, medicineModel *models.Medicine) (medicineID string, err error)
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
	FindByName(ctx context.Context, name string) (*models.Medicine, error)
	FindAll(ctx context.Context, category, search string, page, pageSize int) ([]models.Medicine, int, error)
	UpdateMedicine(ctx context.Context, medicineModel *models.Medicine) error
}
