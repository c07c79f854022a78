package responses

type RegisterUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type LoginUser struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// VerificationRequired rides on the 403 returned when an unverified
// account attempts to log in.
type VerificationRequired struct {
	UserID string `json:"user_id"`
}
