package requests

type UpdateProfile struct {
	Name             string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone            string `json:"phone,omitempty" validate:"omitempty,phone_number"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth      string `json:"date_of_birth,omitempty" validate:"omitempty,date_only"`
	BloodType        string `json:"blood_type,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	EmergencyContact string `json:"emergency_contact,omitempty" validate:"omitempty,phone_number"`
	ProfilePicture   string `json:"profile_picture,omitempty" validate:"omitempty,url"`
}
