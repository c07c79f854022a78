package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error)
	GetPayment(ctx context.Context, session *models.Session, paymentID string) (*responses.Payment, error)
	ListMyPayments(ctx context.Context, session *models.Session, page, pageSize int) ([]responses.Payment, int, error)
	UpdatePaymentStatus(ctx context.Context, session *models.Session, paymentID string, request *requests.UpdatePaymentStatus) (*responses.Payment, error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, paymentModel *models.Payment) (paymentID string, err error)
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]models.Payment, int, error)
	UpdatePayment(ctx context.Context, paymentModel *models.Payment) error
	EnsureIndexes(ctx context.Context) error
}
