package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/dto/requests"
)

type MailerService interface {
	EnqueueEmail(ctx context.Context, payload *requests.EmailPayload) error
}
