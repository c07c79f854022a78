package responses

type UserProfile struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Role             string `json:"role"`
	IsVerified       bool   `json:"is_verified"`
	Gender           string `json:"gender,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	BloodType        string `json:"blood_type,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	ProfilePicture   string `json:"profile_picture,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}
