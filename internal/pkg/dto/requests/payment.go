package requests

type CreatePayment struct {
	AppointmentID string  `json:"appointment_id,omitempty"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Method        string  `json:"method" validate:"required,oneof=card upi netbanking wallet cash"`
	Description   string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdatePaymentStatus struct {
	Status string `json:"status" validate:"required,oneof=completed failed"`
}
