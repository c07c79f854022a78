package sessions

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionService backs JWTs with redis. The token only carries the
// session_id; the role and user live server-side so a logout kills the
// token immediately.
type sessionService struct {
	redisRepo      contracts.RedisRepository
	internalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewSessionService(redisRepo contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		redisRepo:      redisRepo,
		internalConfig: internalConfig,
		Log:            logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionID := uuid.NewString()
	session := &models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		Role:      user.Role,
		Email:     user.Email,
	}

	sessionTTL := time.Duration(s.internalConfig.JWT.ExpTimeInHour) * time.Hour
	sessionKey := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	if err := s.redisRepo.Set(ctx, sessionKey, session, sessionTTL); err != nil {
		s.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	token, err := utils.GenerateSessionJWT(sessionID, s.internalConfig.JWT.Secret, s.internalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *sessionService) ResolveToken(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, s.internalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	sessionKey := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	raw, err := s.redisRepo.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrInvalidSession(fmt.Errorf("session %s not found", sessionID))
	}

	session := &models.Session{}
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	return session, nil
}

func (s *sessionService) DestroySession(ctx context.Context, sessionID string) error {
	sessionKey := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	return s.redisRepo.Delete(ctx, sessionKey)
}
