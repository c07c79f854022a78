package models

import "mediconnect-service/internal/pkg/constvars"

// Appointment is a booking ledger entry. Records are never physically
// deleted, only status-transitioned; completed and cancelled are
// terminal.
type Appointment struct {
	ID              string   `bson:"_id,omitempty"`
	PatientID       string   `bson:"patientId"`
	DoctorID        string   `bson:"doctorId"`
	AppointmentDate string   `bson:"appointmentDate"`
	TimeSlot        Slot     `bson:"timeSlot"`
	Mode            string   `bson:"mode"`
	Reason          string   `bson:"reason"`
	Symptoms        []string `bson:"symptoms,omitempty"`
	Status          string   `bson:"status"`
	// Live mirrors a non-terminal status. The slot uniqueness index
	// filters on it, so it must be updated with every status write.
	Live            bool     `bson:"live"`
	ConsultationFee float64  `bson:"consultationFee,omitempty"`
	Notes           string   `bson:"notes,omitempty"`
	PaymentID       string   `bson:"paymentId,omitempty"`
	HealthReportID  string   `bson:"healthReportId,omitempty"`

	CancellationReason string `bson:"cancellationReason,omitempty"`
	CancelledBy        string `bson:"cancelledBy,omitempty"`

	TimeModel `bson:",inline"`
}

func (a *Appointment) IsTerminal() bool {
	return a.Status == constvars.AppointmentStatusCompleted ||
		a.Status == constvars.AppointmentStatusCancelled
}

func (a *Appointment) IsParty(userID string) bool {
	return a.PatientID == userID || a.DoctorID == userID
}

// CanTransitionTo validates the forward-only doctor transitions
// pending -> confirmed -> completed.
func (a *Appointment) CanTransitionTo(newStatus string) bool {
	switch a.Status {
	case constvars.AppointmentStatusPending:
		return newStatus == constvars.AppointmentStatusConfirmed
	case constvars.AppointmentStatusConfirmed:
		return newStatus == constvars.AppointmentStatusCompleted
	default:
		return false
	}
}
