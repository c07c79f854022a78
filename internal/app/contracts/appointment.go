package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error)
	ListMyAppointments(ctx context.Context, session *models.Session, request *requests.ListAppointments) ([]responses.Appointment, int, error)
	GetAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// FindLiveBySlot resolves the booking conflict query: any appointment
	// on (doctorID, date, slotStart) whose status is pending or confirmed.
	FindLiveBySlot(ctx context.Context, doctorID, date, slotStart string) (*models.Appointment, error)
	FindLiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	FindByParty(ctx context.Context, userID, role, status string, page, pageSize int) ([]models.Appointment, int, error)
	UpdateAppointment(ctx context.Context, appointmentModel *models.Appointment) error
	EnsureIndexes(ctx context.Context) error
}
