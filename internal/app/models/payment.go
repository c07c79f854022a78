package models

import "mediconnect-service/internal/pkg/constvars"

// Payment records a transaction against an account and, optionally, an
// appointment. TransactionID is globally unique (store-enforced).
type Payment struct {
	ID            string  `bson:"_id,omitempty"`
	UserID        string  `bson:"userId"`
	AppointmentID string  `bson:"appointmentId,omitempty"`
	Amount        float64 `bson:"amount"`
	Currency      string  `bson:"currency"`
	Method        string  `bson:"method"`
	Status        string  `bson:"status"`
	TransactionID string  `bson:"transactionId"`
	Description   string  `bson:"description,omitempty"`
	TimeModel     `bson:",inline"`
}

func (p *Payment) IsTerminal() bool {
	return p.Status == constvars.PaymentStatusCompleted ||
		p.Status == constvars.PaymentStatusFailed ||
		p.Status == constvars.PaymentStatusRefunded
}
