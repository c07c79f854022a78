package contracts

import "context"

type RateLimiterService interface {
	// Allow reports whether the keyed caller is still inside its window.
	Allow(ctx context.Context, key string) (bool, error)
}
