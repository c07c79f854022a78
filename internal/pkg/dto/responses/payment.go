package responses

type Payment struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	AppointmentID string  `json:"appointment_id,omitempty"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}
