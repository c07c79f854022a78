package models

import (
	"mediconnect-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"Pending To Confirmed", constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed, true},
		{"Confirmed To Completed", constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCompleted, true},
		{"Pending Skips To Completed", constvars.AppointmentStatusPending, constvars.AppointmentStatusCompleted, false},
		{"Confirmed Back To Pending", constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusPending, false},
		{"Completed Moves Nowhere", constvars.AppointmentStatusCompleted, constvars.AppointmentStatusConfirmed, false},
		{"Cancelled Moves Nowhere", constvars.AppointmentStatusCancelled, constvars.AppointmentStatusConfirmed, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appointment := &Appointment{Status: tc.from}
			assert.Equal(t, tc.allowed, appointment.CanTransitionTo(tc.to))
		})
	}
}

func TestAppointmentIsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: constvars.AppointmentStatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: constvars.AppointmentStatusConfirmed}).IsTerminal())
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusCompleted}).IsTerminal())
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusCancelled}).IsTerminal())
}

func TestAppointmentIsParty(t *testing.T) {
	appointment := &Appointment{PatientID: "patient-1", DoctorID: "doctor-1"}
	assert.True(t, appointment.IsParty("patient-1"))
	assert.True(t, appointment.IsParty("doctor-1"))
	assert.False(t, appointment.IsParty("admin-1"))
}
