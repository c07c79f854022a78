package requests

type RegisterUser struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"password"`
	Phone       string `json:"phone" validate:"required,phone_number"`
	Role        string `json:"role" validate:"required,user_role"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"date_of_birth,omitempty" validate:"omitempty,date_only"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type PhoneLogin struct {
	Phone    string `json:"phone" validate:"required,phone_number"`
	Password string `json:"password" validate:"required,min=8"`
}

type VerifyOTP struct {
	UserID string `json:"user_id" validate:"required"`
	OTP    string `json:"otp" validate:"required,len=6,numeric"`
}

type ResendOTP struct {
	UserID string `json:"user_id" validate:"required"`
}
