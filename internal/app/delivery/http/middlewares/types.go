package middlewares

import (
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"sync"

	"go.uber.org/zap"
)

type Middlewares struct {
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	loginLimiterMu sync.Mutex
	loginLimiters  map[string]*loginLimiterEntry
}

func NewMiddlewares(sessionService contracts.SessionService, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
		loginLimiters:  make(map[string]*loginLimiterEntry),
	}
}
