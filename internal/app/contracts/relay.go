package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/dto/responses"
)

// Relay fans chat events out across instances. Delivery is best effort;
// subscribers only see events published while they are attached.
type Relay interface {
	Publish(ctx context.Context, conversationID string, event *responses.ChatEvent) error
	Subscribe(ctx context.Context, conversationID string) (<-chan responses.ChatEvent, func(), error)
}
