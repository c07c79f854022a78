package doctors

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"strings"
	"time"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:      doctorRepository,
		UserRepository:        userRepository,
		AppointmentRepository: appointmentRepository,
		Log:                   logger,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, request *requests.ListDoctors) ([]responses.Doctor, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorModels, total, err := uc.DoctorRepository.FindAll(ctx, request.Specialty, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Doctor, 0, len(doctorModels))
	for i := range doctorModels {
		dto, err := uc.buildDoctorResponse(ctx, &doctorModels[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *dto)
	}
	return result, total, nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByUserID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(fmt.Errorf("doctor %s not found", doctorID))
	}
	return uc.buildDoctorResponse(ctx, doctor)
}

func (uc *doctorUsecase) UpsertProfile(ctx context.Context, session *models.Session, request *requests.UpsertDoctorProfile) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpsertProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	availability, err := buildAvailability(request.Availability)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doctor := &models.Doctor{
		UserID:            session.UserID,
		Specialties:       request.Specialties,
		LicenseNumber:     request.LicenseNumber,
		YearsOfExperience: request.YearsOfExperience,
		Hospital:          request.ClinicAddress,
		ConsultationFee: models.ConsultationFee{
			VideoCall: request.VideoCallFee,
			InClinic:  request.InClinicFee,
		},
		Availability: availability,
		Bio:          request.Bio,
	}
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	if err := uc.DoctorRepository.Upsert(ctx, doctor); err != nil {
		return nil, err
	}

	stored, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return uc.buildDoctorResponse(ctx, stored)
}

// GetAvailableSlots reconciles the doctor's declared weekly template
// against live bookings for the requested date: declared minus any slot
// already held by a pending or confirmed appointment.
func (uc *doctorUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	parsedDate, err := time.Parse(constvars.AppointmentDateTimeFormat, date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	doctor, err := uc.DoctorRepository.FindByUserID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(fmt.Errorf("doctor %s not found", doctorID))
	}

	liveAppointments, err := uc.AppointmentRepository.FindLiveByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(liveAppointments))
	for i := range liveAppointments {
		booked[liveAppointments[i].TimeSlot.Start] = true
	}

	weekday := int(parsedDate.Weekday())
	available := []responses.Slot{}
	for _, day := range doctor.Availability {
		if day.DayOfWeek != weekday {
			continue
		}
		for _, slot := range day.Slots {
			if booked[slot.Start] {
				continue
			}
			available = append(available, responses.Slot{Start: slot.Start, End: slot.End})
		}
	}

	return &responses.AvailableSlots{
		DoctorID: doctorID,
		Date:     date,
		Slots:    available,
	}, nil
}

func (uc *doctorUsecase) buildDoctorResponse(ctx context.Context, doctor *models.Doctor) (*responses.Doctor, error) {
	dto := &responses.Doctor{
		UserID:            doctor.UserID,
		Specialties:       doctor.Specialties,
		LicenseNumber:     doctor.LicenseNumber,
		YearsOfExperience: doctor.YearsOfExperience,
		VideoCallFee:      doctor.ConsultationFee.VideoCall,
		InClinicFee:       doctor.ConsultationFee.InClinic,
		Rating:            doctor.TotalRating,
		TotalReviews:      doctor.ReviewsCount,
		Bio:               doctor.Bio,
		ClinicAddress:     doctor.Hospital,
	}

	for _, day := range doctor.Availability {
		slots := make([]responses.Slot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, responses.Slot{Start: slot.Start, End: slot.End})
		}
		dto.Availability = append(dto.Availability, responses.DayAvailability{
			DayOfWeek: weekdayName(day.DayOfWeek),
			Slots:     slots,
		})
	}

	user, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		dto.Name = user.Name
	}
	return dto, nil
}

var weekdayNumbers = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

func buildAvailability(input []requests.DayAvailabilityInput) ([]models.DayAvailability, error) {
	availability := make([]models.DayAvailability, 0, len(input))
	for _, day := range input {
		dayNumber, ok := weekdayNumbers[strings.ToLower(day.DayOfWeek)]
		if !ok {
			return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown weekday %s", day.DayOfWeek))
		}
		slots := make([]models.Slot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, models.Slot{Start: slot.Start, End: slot.End})
		}
		availability = append(availability, models.DayAvailability{
			DayOfWeek: dayNumber,
			Slots:     slots,
		})
	}
	return availability, nil
}

func weekdayName(dayNumber int) string {
	for name, number := range weekdayNumbers {
		if number == dayNumber {
			return name
		}
	}
	return constvars.ResponseUnknown
}
