package appointments

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

const bookingLockExpiry = 10 * time.Second

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	LockerService         contracts.LockerService
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	lockerService contracts.LockerService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		UserRepository:        userRepository,
		LockerService:         lockerService,
		Log:                   logger,
	}
}

// BookAppointment holds the slot with a redis lock, re-checks the
// ledger for a live conflict, then inserts. The partial unique index
// backs all of this up at the store, so even two instances racing past
// the lock cannot both commit.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	doctorUser, err := uc.UserRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctorUser == nil || !doctorUser.IsDoctor() {
		return nil, exceptions.ErrDoctorNotExist(fmt.Errorf("doctor %s not found", request.DoctorID))
	}

	doctor, err := uc.DoctorRepository.FindByUserID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}

	appointmentDate, err := time.Parse(constvars.AppointmentDateTimeFormat, request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	// Where a weekly template is declared, the slot must be part of it.
	if doctor != nil && len(doctor.Availability) > 0 {
		if !doctor.DeclaresSlot(int(appointmentDate.Weekday()), request.SlotStart) {
			return nil, exceptions.ErrSlotOutsideAvailability(nil)
		}
	}

	lockKey := fmt.Sprintf(constvars.AppointmentLockKeyFormat, request.DoctorID, request.AppointmentDate, request.SlotStart)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, bookingLockExpiry)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotUnavailable(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	conflict, err := uc.AppointmentRepository.FindLiveBySlot(ctx, request.DoctorID, request.AppointmentDate, request.SlotStart)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, exceptions.ErrSlotUnavailable(nil)
	}

	var consultationFee float64
	if doctor != nil {
		switch request.Mode {
		case constvars.ConsultationModeVideo:
			consultationFee = doctor.ConsultationFee.VideoCall
		case constvars.ConsultationModeInClinic:
			consultationFee = doctor.ConsultationFee.InClinic
		}
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:       session.UserID,
		DoctorID:        request.DoctorID,
		AppointmentDate: request.AppointmentDate,
		TimeSlot: models.Slot{
			Start: request.SlotStart,
			End:   request.SlotEnd,
		},
		Mode:            request.Mode,
		Reason:          request.Reason,
		Symptoms:        request.Symptoms,
		Status:          constvars.AppointmentStatusPending,
		Live:            true,
		ConsultationFee: consultationFee,
	}
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Log.Info("appointmentUsecase.BookAppointment booked",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) ListMyAppointments(ctx context.Context, session *models.Session, request *requests.ListAppointments) ([]responses.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListMyAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	appointmentModels, total, err := uc.AppointmentRepository.FindByParty(ctx, session.UserID, session.Role, request.Status, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Appointment, 0, len(appointmentModels))
	for i := range appointmentModels {
		result = append(result, *buildAppointmentResponse(&appointmentModels[i]))
	}
	return result, total, nil
}

func (uc *appointmentUsecase) GetAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.findPartyAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", appointmentID))
	}

	// Only the doctor on the record moves it forward.
	if appointment.DoctorID != session.UserID {
		return nil, exceptions.ErrNotAppointmentParty(nil)
	}

	if appointment.IsTerminal() {
		return nil, exceptions.ErrAppointmentTerminal(nil)
	}
	if !appointment.CanTransitionTo(request.Status) {
		return nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("%s -> %s", appointment.Status, request.Status))
	}

	appointment.Status = request.Status
	appointment.Live = !appointment.IsTerminal()
	appointment.UpdatedAt = time.Now()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findPartyAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.IsTerminal() {
		return nil, exceptions.ErrAppointmentTerminal(nil)
	}

	cancelledBy := constvars.RolePatient
	if appointment.DoctorID == session.UserID {
		cancelledBy = constvars.RoleDoctor
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.Live = false
	appointment.CancellationReason = request.Reason
	appointment.CancelledBy = cancelledBy
	appointment.UpdatedAt = time.Now()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return buildAppointmentResponse(appointment), nil
}

// findPartyAppointment loads the record and enforces that the caller
// is the patient or the doctor on it.
func (uc *appointmentUsecase) findPartyAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", appointmentID))
	}
	if !appointment.IsParty(session.UserID) {
		return nil, exceptions.ErrNotAppointmentParty(nil)
	}
	return appointment, nil
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	dto := &responses.Appointment{
		ID:                 appointment.ID,
		PatientID:          appointment.PatientID,
		DoctorID:           appointment.DoctorID,
		AppointmentDate:    appointment.AppointmentDate,
		SlotStart:          appointment.TimeSlot.Start,
		SlotEnd:            appointment.TimeSlot.End,
		Mode:               appointment.Mode,
		Reason:             appointment.Reason,
		Symptoms:           appointment.Symptoms,
		Status:             appointment.Status,
		ConsultationFee:    appointment.ConsultationFee,
		CancellationReason: appointment.CancellationReason,
		CancelledBy:        appointment.CancelledBy,
	}
	if !appointment.CreatedAt.IsZero() {
		dto.CreatedAt = appointment.CreatedAt.Format(time.RFC3339)
	}
	return dto
}
