package requests

type SlotInput struct {
	Start string `json:"start" validate:"required,time_hhmm"`
	End   string `json:"end" validate:"required,time_hhmm"`
}

type DayAvailabilityInput struct {
	DayOfWeek string      `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Slots     []SlotInput `json:"slots" validate:"required,min=1,dive"`
}

type UpsertDoctorProfile struct {
	Specialties       []string               `json:"specialties" validate:"required,min=1,dive,min=2"`
	LicenseNumber     string                 `json:"license_number" validate:"required,min=4"`
	YearsOfExperience int                    `json:"years_of_experience" validate:"gte=0,lte=80"`
	VideoCallFee      float64                `json:"video_call_fee" validate:"gte=0"`
	InClinicFee       float64                `json:"in_clinic_fee" validate:"gte=0"`
	Availability      []DayAvailabilityInput `json:"availability" validate:"omitempty,dive"`
	Bio               string                 `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ClinicAddress     string                 `json:"clinic_address,omitempty" validate:"omitempty,max=500"`
}

type ListDoctors struct {
	Specialty string
	Page      int
	PageSize  int
}
