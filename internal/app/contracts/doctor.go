package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, request *requests.ListDoctors) ([]responses.Doctor, int, error)
	GetDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error)
	UpsertProfile(ctx context.Context, session *models.Session, request *requests.UpsertDoctorProfile) (*responses.Doctor, error)
	GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error)
}

type DoctorRepository interface {
	Upsert(ctx context.Context, doctorModel *models.Doctor) error
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	FindAll(ctx context.Context, specialty string, page, pageSize int) ([]models.Doctor, int, error)
	EnsureIndexes(ctx context.Context) error
}
