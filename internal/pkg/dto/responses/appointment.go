package responses

type Appointment struct {
	ID                 string   `json:"id"`
	PatientID          string   `json:"patient_id"`
	DoctorID           string   `json:"doctor_id"`
	AppointmentDate    string   `json:"appointment_date"`
	SlotStart          string   `json:"slot_start"`
	SlotEnd            string   `json:"slot_end"`
	Mode               string   `json:"mode"`
	Reason             string   `json:"reason"`
	Symptoms           []string `json:"symptoms,omitempty"`
	Status             string   `json:"status"`
	ConsultationFee    float64  `json:"consultation_fee"`
	CancellationReason string   `json:"cancellation_reason,omitempty"`
	CancelledBy        string   `json:"cancelled_by,omitempty"`
	CreatedAt          string   `json:"created_at,omitempty"`
}
