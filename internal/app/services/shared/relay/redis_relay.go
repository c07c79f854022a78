package relay

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisRelay fans chat events out over one redis pub/sub channel per
// conversation. Events published while nobody listens are gone; the
// persisted message log is the source of truth.
type redisRelay struct {
	client *redis.Client
	Log    *zap.Logger
}

func NewRedisRelay(client *redis.Client, logger *zap.Logger) contracts.Relay {
	return &redisRelay{
		client: client,
		Log:    logger,
	}
}

func (r *redisRelay) Publish(ctx context.Context, conversationID string, event *responses.ChatEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel := fmt.Sprintf(constvars.ChatChannelKeyFormat, conversationID)
	if err := r.client.Publish(ctx, channel, payload).Err(); err != nil {
		return exceptions.ErrRedisPublish(err)
	}
	return nil
}

func (r *redisRelay) Subscribe(ctx context.Context, conversationID string) (<-chan responses.ChatEvent, func(), error) {
	channel := fmt.Sprintf(constvars.ChatChannelKeyFormat, conversationID)
	pubsub := r.client.Subscribe(ctx, channel)

	// Force the SUBSCRIBE round trip so a broken connection surfaces
	// here instead of as a silent dead stream.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, exceptions.ErrRedisPublish(err)
	}

	events := make(chan responses.ChatEvent, 16)
	go func() {
		defer close(events)
		for message := range pubsub.Channel() {
			var event responses.ChatEvent
			if err := json.Unmarshal([]byte(message.Payload), &event); err != nil {
				r.Log.Warn("redisRelay.Subscribe dropping malformed event",
					zap.String(constvars.LoggingConversationIDKey, conversationID),
					zap.Error(err),
				)
				continue
			}
			select {
			case events <- event:
			default:
				// Slow consumer, drop rather than block the relay.
			}
		}
	}()

	stop := func() {
		pubsub.Close()
	}
	return events, stop, nil
}
