package payments

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultCurrency = "INR"

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository:     paymentRepository,
		AppointmentRepository: appointmentRepository,
		Log:                   logger,
	}
}

func (uc *paymentUsecase) CreatePayment(ctx context.Context, session *models.Session, request *requests.CreatePayment) (*responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	// A payment against an appointment must reference one the caller is
	// actually part of.
	if request.AppointmentID != "" {
		appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", request.AppointmentID))
		}
		if !appointment.IsParty(session.UserID) {
			return nil, exceptions.ErrNotAppointmentParty(nil)
		}
	}

	currency := strings.ToUpper(request.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now()
	payment := &models.Payment{
		UserID:        session.UserID,
		AppointmentID: request.AppointmentID,
		Amount:        request.Amount,
		Currency:      currency,
		Method:        request.Method,
		Status:        constvars.PaymentStatusPending,
		TransactionID: utils.GenerateTransactionID(),
		Description:   request.Description,
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now

	paymentID, err := uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = paymentID

	return buildPaymentResponse(payment), nil
}

func (uc *paymentUsecase) GetPayment(ctx context.Context, session *models.Session, paymentID string) (*responses.Payment, error) {
	payment, err := uc.findOwnedPayment(ctx, session, paymentID)
	if err != nil {
		return nil, err
	}
	return buildPaymentResponse(payment), nil
}

func (uc *paymentUsecase) ListMyPayments(ctx context.Context, session *models.Session, page, pageSize int) ([]responses.Payment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ListMyPayments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	paymentModels, total, err := uc.PaymentRepository.FindByUserID(ctx, session.UserID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		result = append(result, *buildPaymentResponse(&paymentModels[i]))
	}
	return result, total, nil
}

// UpdatePaymentStatus settles a pending record to completed or failed.
// Terminal records never move again; refunds are reconciled outside
// this service.
func (uc *paymentUsecase) UpdatePaymentStatus(ctx context.Context, session *models.Session, paymentID string, request *requests.UpdatePaymentStatus) (*responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.UpdatePaymentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payment, err := uc.findOwnedPayment(ctx, session, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.IsTerminal() {
		return nil, exceptions.ErrPaymentTerminal(nil)
	}

	payment.Status = request.Status
	payment.UpdatedAt = time.Now()
	if err := uc.PaymentRepository.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return buildPaymentResponse(payment), nil
}

func (uc *paymentUsecase) findOwnedPayment(ctx context.Context, session *models.Session, paymentID string) (*models.Payment, error) {
	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotExist(fmt.Errorf("payment %s not found", paymentID))
	}
	if payment.UserID != session.UserID && !session.IsAdmin() {
		return nil, exceptions.ErrRoleForbidden(nil)
	}
	return payment, nil
}

func buildPaymentResponse(payment *models.Payment) *responses.Payment {
	dto := &responses.Payment{
		ID:            payment.ID,
		UserID:        payment.UserID,
		AppointmentID: payment.AppointmentID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Method:        payment.Method,
		Status:        payment.Status,
		Description:   payment.Description,
	}
	if !payment.CreatedAt.IsZero() {
		dto.CreatedAt = payment.CreatedAt.Format(time.RFC3339)
	}
	return dto
}
