package requests

type BookAppointment struct {
	DoctorID        string   `json:"doctor_id" validate:"required"`
	AppointmentDate string   `json:"appointment_date" validate:"required,date_only"`
	SlotStart       string   `json:"slot_start" validate:"required,time_hhmm"`
	SlotEnd         string   `json:"slot_end" validate:"required,time_hhmm"`
	Mode            string   `json:"mode" validate:"required,oneof=video in-clinic"`
	Reason          string   `json:"reason" validate:"required,min=3,max=1000"`
	Symptoms        []string `json:"symptoms,omitempty" validate:"omitempty,dive,max=200"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed"`
}

type CancelAppointment struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

type ListAppointments struct {
	Status   string
	Page     int
	PageSize int
}
