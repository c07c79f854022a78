package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LoginUserByPhone(ctx context.Context, request *requests.PhoneLogin) (*responses.LoginUser, error)
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.LoginUser, error)
	ResendOTP(ctx context.Context, request *requests.ResendOTP) error
	LogoutUser(ctx context.Context, session *models.Session) error
}
