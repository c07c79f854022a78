package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User) (token string, err error)
	ResolveToken(ctx context.Context, token string) (*models.Session, error)
	DestroySession(ctx context.Context, sessionID string) error
}
