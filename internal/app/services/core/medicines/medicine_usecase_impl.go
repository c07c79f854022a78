package medicines

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type medicineUsecase struct {
	MedicineRepository contracts.MedicineRepository
	Log                *zap.Logger
}

func NewMedicineUsecase(
	medicineRepository contracts.MedicineRepository,
	logger *zap.Logger,
) contracts.MedicineUsecase {
	return &medicineUsecase{
		MedicineRepository: medicineRepository,
		Log:                logger,
	}
}

func (uc *medicineUsecase) CreateMedicine(ctx context.Context, request *requests.CreateMedicine) (*responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.CreateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.MedicineRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrMedicineAlreadyExist(fmt.Errorf("medicine %q already in catalog", request.Name))
	}

	now := time.Now()
	medicine := &models.Medicine{
		Name:                 request.Name,
		Description:          request.Description,
		Category:             request.Category,
		Manufacturer:         request.Manufacturer,
		Price:                request.Price,
		Stock:                request.Stock,
		RequiresPrescription: request.RequiresPrescription,
		IsActive:             true,
	}
	medicine.CreatedAt = now
	medicine.UpdatedAt = now

	medicineID, err := uc.MedicineRepository.CreateMedicine(ctx, medicine)
	if err != nil {
		return nil, err
	}
	medicine.ID = medicineID

	return buildMedicineResponse(medicine), nil
}

func (uc *medicineUsecase) GetMedicine(ctx context.Context, medicineID string) (*responses.Medicine, error) {
	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrMedicineNotExist(fmt.Errorf("medicine %s not found", medicineID))
	}
	return buildMedicineResponse(medicine), nil
}

func (uc *medicineUsecase) ListMedicines(ctx context.Context, request *requests.ListMedicines) ([]responses.Medicine, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.ListMedicines called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	medicineModels, total, err := uc.MedicineRepository.FindAll(ctx, request.Category, request.Search, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Medicine, 0, len(medicineModels))
	for i := range medicineModels {
		result = append(result, *buildMedicineResponse(&medicineModels[i]))
	}
	return result, total, nil
}

func (uc *medicineUsecase) UpdateMedicine(ctx context.Context, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicineUsecase.UpdateMedicine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrMedicineNotExist(fmt.Errorf("medicine %s not found", medicineID))
	}

	if request.Name != "" && request.Name != medicine.Name {
		existing, err := uc.MedicineRepository.FindByName(ctx, request.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrMedicineAlreadyExist(fmt.Errorf("medicine %q already in catalog", request.Name))
		}
		medicine.Name = request.Name
	}
	if request.Description != "" {
		medicine.Description = request.Description
	}
	if request.Category != "" {
		medicine.Category = request.Category
	}
	if request.Manufacturer != "" {
		medicine.Manufacturer = request.Manufacturer
	}
	if request.Price != nil {
		medicine.Price = *request.Price
	}
	if request.Stock != nil {
		medicine.Stock = *request.Stock
	}
	if request.RequiresPrescription != nil {
		medicine.RequiresPrescription = *request.RequiresPrescription
	}
	if request.IsActive != nil {
		medicine.IsActive = *request.IsActive
	}
	medicine.UpdatedAt = time.Now()

	if err := uc.MedicineRepository.UpdateMedicine(ctx, medicine); err != nil {
		return nil, err
	}
	return buildMedicineResponse(medicine), nil
}

func buildMedicineResponse(medicine *models.Medicine) *responses.Medicine {
	return &responses.Medicine{
		ID:                   medicine.ID,
		Name:                 medicine.Name,
		Description:          medicine.Description,
		Category:             medicine.Category,
		Manufacturer:         medicine.Manufacturer,
		Price:                medicine.Price,
		Stock:                medicine.Stock,
		RequiresPrescription: medicine.RequiresPrescription,
		IsActive:             medicine.IsActive,
	}
}
