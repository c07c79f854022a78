package payments

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentRepo struct {
	payments map[string]*models.Payment
	nextID   int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	for _, existing := range r.payments {
		if existing.TransactionID == payment.TransactionID {
			return "", exceptions.ErrMongoDBInsertDocument(fmt.Errorf("duplicate transactionId %s", payment.TransactionID))
		}
	}
	r.nextID++
	id := fmt.Sprintf("payment-%d", r.nextID)
	stored := *payment
	stored.ID = id
	r.payments[id] = &stored
	return id, nil
}

func (r *fakePaymentRepo) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, ok := r.payments[paymentID]
	if !ok {
		return nil, nil
	}
	copied := *payment
	return &copied, nil
}

func (r *fakePaymentRepo) FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]models.Payment, int, error) {
	var result []models.Payment
	for _, payment := range r.payments {
		if payment.UserID == userID {
			result = append(result, *payment)
		}
	}
	return result, len(result), nil
}

func (r *fakePaymentRepo) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	stored := *payment
	r.payments[payment.ID] = &stored
	return nil
}

func (r *fakePaymentRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fakeAppointmentRepo only needs FindByID for the payment party check.
type fakeAppointmentRepo struct {
	appointments map[string]*models.Appointment
}

func (r *fakeAppointmentRepo) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return appointment.ID, nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := r.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindLiveBySlot(ctx context.Context, doctorID, date, slotStart string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) FindLiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) FindByParty(ctx context.Context, userID, role, status string, page, pageSize int) ([]models.Appointment, int, error) {
	return nil, 0, nil
}

func (r *fakeAppointmentRepo) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (r *fakeAppointmentRepo) EnsureIndexes(ctx context.Context) error { return nil }

func devMessage(t *testing.T, err error) string {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T: %v", err, err)
	return customErr.DevMessage
}

func setupPaymentUsecase() (contracts.PaymentUsecase, *fakePaymentRepo, *fakeAppointmentRepo) {
	paymentRepo := newFakePaymentRepo()
	appointmentRepo := &fakeAppointmentRepo{appointments: map[string]*models.Appointment{
		"appt-1": {
			ID:        "appt-1",
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			Status:    constvars.AppointmentStatusConfirmed,
		},
	}}
	usecase := NewPaymentUsecase(paymentRepo, appointmentRepo, zap.NewNop())
	return usecase, paymentRepo, appointmentRepo
}

func paymentSession(userID string) *models.Session {
	return &models.Session{SessionID: "sess-1", UserID: userID, Role: constvars.RolePatient}
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Creation", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()

		result, err := usecase.CreatePayment(ctx, paymentSession("patient-1"), &requests.CreatePayment{
			AppointmentID: "appt-1",
			Amount:        500,
			Method:        "upi",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.PaymentStatusPending, result.Status)
		assert.Equal(t, "INR", result.Currency, "currency defaults when omitted")
		assert.True(t, strings.HasPrefix(result.TransactionID, "TXN-"))
	})

	t.Run("Currency Is Uppercased", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()

		result, err := usecase.CreatePayment(ctx, paymentSession("patient-1"), &requests.CreatePayment{
			Amount:   250,
			Currency: "usd",
			Method:   "card",
		})
		require.NoError(t, err)
		assert.Equal(t, "USD", result.Currency)
	})

	t.Run("Transaction IDs Are Unique", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()

		first, err := usecase.CreatePayment(ctx, paymentSession("patient-1"), &requests.CreatePayment{Amount: 100, Method: "cash"})
		require.NoError(t, err)
		second, err := usecase.CreatePayment(ctx, paymentSession("patient-1"), &requests.CreatePayment{Amount: 100, Method: "cash"})
		require.NoError(t, err)
		assert.NotEqual(t, first.TransactionID, second.TransactionID)
	})

	t.Run("Unknown Appointment", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()

		_, err := usecase.CreatePayment(ctx, paymentSession("patient-1"), &requests.CreatePayment{
			AppointmentID: "missing",
			Amount:        500,
			Method:        "upi",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevAppointmentNotFound, devMessage(t, err))
	})

	t.Run("Payer Must Be Appointment Party", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()

		_, err := usecase.CreatePayment(ctx, paymentSession("stranger"), &requests.CreatePayment{
			AppointmentID: "appt-1",
			Amount:        500,
			Method:        "upi",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevNotAppointmentParty, devMessage(t, err))
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, usecase contracts.PaymentUsecase) string {
		t.Helper()
		result, err := usecase.CreatePayment(ctx, paymentSession("patient-1"), &requests.CreatePayment{Amount: 500, Method: "upi"})
		require.NoError(t, err)
		return result.ID
	}

	t.Run("Pending Completes", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()
		id := create(t, usecase)

		result, err := usecase.UpdatePaymentStatus(ctx, paymentSession("patient-1"), id, &requests.UpdatePaymentStatus{Status: constvars.PaymentStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, constvars.PaymentStatusCompleted, result.Status)
	})

	t.Run("Pending Fails", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()
		id := create(t, usecase)

		result, err := usecase.UpdatePaymentStatus(ctx, paymentSession("patient-1"), id, &requests.UpdatePaymentStatus{Status: constvars.PaymentStatusFailed})
		require.NoError(t, err)
		assert.Equal(t, constvars.PaymentStatusFailed, result.Status)
	})

	t.Run("Terminal Is Immutable", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()
		id := create(t, usecase)

		_, err := usecase.UpdatePaymentStatus(ctx, paymentSession("patient-1"), id, &requests.UpdatePaymentStatus{Status: constvars.PaymentStatusCompleted})
		require.NoError(t, err)

		_, err = usecase.UpdatePaymentStatus(ctx, paymentSession("patient-1"), id, &requests.UpdatePaymentStatus{Status: constvars.PaymentStatusFailed})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevPaymentTerminal, devMessage(t, err))
	})

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()
		id := create(t, usecase)

		_, err := usecase.UpdatePaymentStatus(ctx, paymentSession("stranger"), id, &requests.UpdatePaymentStatus{Status: constvars.PaymentStatusCompleted})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevRoleForbidden, devMessage(t, err))
	})

	t.Run("Admin May Settle", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()
		id := create(t, usecase)

		admin := &models.Session{SessionID: "sess-a", UserID: "admin-1", Role: constvars.RoleAdmin}
		result, err := usecase.UpdatePaymentStatus(ctx, admin, id, &requests.UpdatePaymentStatus{Status: constvars.PaymentStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, constvars.PaymentStatusCompleted, result.Status)
	})
}

func TestGetPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Reads Own Payment", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()
		created, err := usecase.CreatePayment(ctx, paymentSession("patient-1"), &requests.CreatePayment{Amount: 500, Method: "upi"})
		require.NoError(t, err)

		result, err := usecase.GetPayment(ctx, paymentSession("patient-1"), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.TransactionID, result.TransactionID)
	})

	t.Run("Unknown Payment", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()

		_, err := usecase.GetPayment(ctx, paymentSession("patient-1"), "missing")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevPaymentNotFound, devMessage(t, err))
	})

	t.Run("Non-Owner Forbidden", func(t *testing.T) {
		usecase, _, _ := setupPaymentUsecase()
		created, err := usecase.CreatePayment(ctx, paymentSession("patient-1"), &requests.CreatePayment{Amount: 500, Method: "upi"})
		require.NoError(t, err)

		_, err = usecase.GetPayment(ctx, paymentSession("stranger"), created.ID)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevRoleForbidden, devMessage(t, err))
	})
}