package doctors

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (r *fakeDoctorRepo) Upsert(ctx context.Context, doctor *models.Doctor) error {
	stored := *doctor
	r.doctors[doctor.UserID] = &stored
	return nil
}

func (r *fakeDoctorRepo) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	doctor, ok := r.doctors[userID]
	if !ok {
		return nil, nil
	}
	copied := *doctor
	return &copied, nil
}

func (r *fakeDoctorRepo) FindAll(ctx context.Context, specialty string, page, pageSize int) ([]models.Doctor, int, error) {
	var result []models.Doctor
	for _, doctor := range r.doctors {
		if specialty != "" {
			match := false
			for _, s := range doctor.Specialties {
				if s == specialty {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		result = append(result, *doctor)
	}
	return result, len(result), nil
}

func (r *fakeDoctorRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeDoctorUserRepo struct {
	users map[string]*models.User
}

func (r *fakeDoctorUserRepo) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return user.ID, nil
}

func (r *fakeDoctorUserRepo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeDoctorUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (r *fakeDoctorUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return nil, nil
}

func (r *fakeDoctorUserRepo) UpdateUser(ctx context.Context, user *models.User) error { return nil }

func (r *fakeDoctorUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeSlotAppointmentRepo struct {
	live []models.Appointment
}

func (r *fakeSlotAppointmentRepo) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return appointment.ID, nil
}

func (r *fakeSlotAppointmentRepo) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeSlotAppointmentRepo) FindLiveBySlot(ctx context.Context, doctorID, date, slotStart string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeSlotAppointmentRepo) FindLiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, appointment := range r.live {
		if appointment.DoctorID == doctorID && appointment.AppointmentDate == date {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (r *fakeSlotAppointmentRepo) FindByParty(ctx context.Context, userID, role, status string, page, pageSize int) ([]models.Appointment, int, error) {
	return nil, 0, nil
}

func (r *fakeSlotAppointmentRepo) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (r *fakeSlotAppointmentRepo) EnsureIndexes(ctx context.Context) error { return nil }

func setupDoctorUsecase(live []models.Appointment) contracts.DoctorUsecase {
	doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
		"doctor-1": {
			UserID:      "doctor-1",
			Specialties: []string{"cardiology"},
			Availability: []models.DayAvailability{
				// 2026-09-01 is a Tuesday, weekday 2.
				{DayOfWeek: 2, Slots: []models.Slot{
					{Start: "09:00", End: "09:30"},
					{Start: "09:30", End: "10:00"},
					{Start: "10:00", End: "10:30"},
				}},
				{DayOfWeek: 3, Slots: []models.Slot{
					{Start: "14:00", End: "14:30"},
				}},
			},
		},
	}}
	userRepo := &fakeDoctorUserRepo{users: map[string]*models.User{
		"doctor-1": {ID: "doctor-1", Name: "Dr. Asha Rao", Role: constvars.RoleDoctor, IsVerified: true},
	}}
	return NewDoctorUsecase(doctorRepo, userRepo, &fakeSlotAppointmentRepo{live: live}, zap.NewNop())
}

func TestGetAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("All Declared Slots Free", func(t *testing.T) {
		usecase := setupDoctorUsecase(nil)

		result, err := usecase.GetAvailableSlots(ctx, "doctor-1", "2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, []responses.Slot{
			{Start: "09:00", End: "09:30"},
			{Start: "09:30", End: "10:00"},
			{Start: "10:00", End: "10:30"},
		}, result.Slots)
	})

	t.Run("Booked Slots Excluded", func(t *testing.T) {
		usecase := setupDoctorUsecase([]models.Appointment{
			{
				DoctorID:        "doctor-1",
				AppointmentDate: "2026-09-01",
				TimeSlot:        models.Slot{Start: "09:30", End: "10:00"},
				Status:          constvars.AppointmentStatusConfirmed,
			},
		})

		result, err := usecase.GetAvailableSlots(ctx, "doctor-1", "2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, []responses.Slot{
			{Start: "09:00", End: "09:30"},
			{Start: "10:00", End: "10:30"},
		}, result.Slots)
	})

	t.Run("Only Requested Weekday Counts", func(t *testing.T) {
		usecase := setupDoctorUsecase(nil)

		// 2026-09-02 is a Wednesday, weekday 3.
		result, err := usecase.GetAvailableSlots(ctx, "doctor-1", "2026-09-02")
		require.NoError(t, err)
		assert.Equal(t, []responses.Slot{{Start: "14:00", End: "14:30"}}, result.Slots)
	})

	t.Run("No Template For Day Yields Empty", func(t *testing.T) {
		usecase := setupDoctorUsecase(nil)

		// 2026-09-03 is a Thursday, no declared availability.
		result, err := usecase.GetAvailableSlots(ctx, "doctor-1", "2026-09-03")
		require.NoError(t, err)
		assert.Empty(t, result.Slots)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		usecase := setupDoctorUsecase(nil)

		_, err := usecase.GetAvailableSlots(ctx, "ghost", "2026-09-01")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrDevDoctorNotFound, customErr.DevMessage)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		usecase := setupDoctorUsecase(nil)

		_, err := usecase.GetAvailableSlots(ctx, "doctor-1", "September 1st")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrDevCannotParseDate, customErr.DevMessage)
	})
}