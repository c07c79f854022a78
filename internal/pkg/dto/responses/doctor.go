package responses

type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayAvailability struct {
	DayOfWeek string `json:"day_of_week"`
	Slots     []Slot `json:"slots"`
}

type Doctor struct {
	UserID            string            `json:"user_id"`
	Name              string            `json:"name"`
	Specialties       []string          `json:"specialties"`
	LicenseNumber     string            `json:"license_number"`
	YearsOfExperience int               `json:"years_of_experience"`
	VideoCallFee      float64           `json:"video_call_fee"`
	InClinicFee       float64           `json:"in_clinic_fee"`
	Availability      []DayAvailability `json:"availability,omitempty"`
	Rating            float64           `json:"rating"`
	TotalReviews      int               `json:"total_reviews"`
	Bio               string            `json:"bio,omitempty"`
	ClinicAddress     string            `json:"clinic_address,omitempty"`
}

type AvailableSlots struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Slots    []Slot `json:"slots"`
}
