package models

import "mediconnect-service/internal/pkg/constvars"

type LabCenter struct {
	Name    string `bson:"name,omitempty"`
	Address string `bson:"address,omitempty"`
	Phone   string `bson:"phone,omitempty"`
}

type LabTest struct {
	ID                      string    `bson:"_id,omitempty"`
	PatientID               string    `bson:"patientId"`
	TestName                string    `bson:"testName"`
	Description             string    `bson:"description,omitempty"`
	Category                string    `bson:"category"`
	Cost                    float64   `bson:"cost"`
	Status                  string    `bson:"status"`
	ScheduledDate           string    `bson:"scheduledDate,omitempty"`
	ReportURL               string    `bson:"reportUrl,omitempty"`
	LabCenter               LabCenter `bson:"labCenter,omitempty"`
	HomeCollectionAvailable bool      `bson:"homeCollectionAvailable"`
	Notes                   string    `bson:"notes,omitempty"`
	PaymentID               string    `bson:"paymentId,omitempty"`
	TimeModel               `bson:",inline"`
}

// CanTransitionTo enforces the forward collection pipeline; Cancelled
// is reachable from any non-terminal status.
func (t *LabTest) CanTransitionTo(newStatus string) bool {
	if t.Status == constvars.LabTestStatusCompleted || t.Status == constvars.LabTestStatusCancelled {
		return false
	}
	if newStatus == constvars.LabTestStatusCancelled {
		return true
	}
	order := map[string]int{
		constvars.LabTestStatusScheduled:       0,
		constvars.LabTestStatusSampleCollected: 1,
		constvars.LabTestStatusInProgress:      2,
		constvars.LabTestStatusCompleted:       3,
	}
	current, okCurrent := order[t.Status]
	next, okNext := order[newStatus]
	return okCurrent && okNext && next == current+1
}
