package auth

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/app/services/core/users"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	MailerService  contracts.MailerService
	OTPRateLimiter contracts.RateLimiterService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	otpRateLimiter contracts.RateLimiterService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		MailerService:  mailerService,
		OTPRateLimiter: otpRateLimiter,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingByEmail, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	existingByPhone, err := uc.UserRepository.FindByPhone(ctx, request.Phone)
	if err != nil {
		return nil, err
	}
	if existingByPhone != nil {
		return nil, exceptions.ErrPhoneAlreadyRegistered(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	otp, otpExpiry, err := uc.mintOTP(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Name:        request.Name,
		Email:       request.Email,
		Phone:       request.Phone,
		Password:    hashedPassword,
		Role:        request.Role,
		Gender:      request.Gender,
		DateOfBirth: request.DateOfBirth,
		IsVerified:  false,
		OTP:         otp,
		OTPExpiry:   &otpExpiry,
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := uc.dispatchOTPEmail(ctx, request.Email, otp); err != nil {
		// The code is already persisted; the caller can hit resend.
		uc.Log.Error("authUsecase.RegisterUser failed enqueueing OTP email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.RegisterUser{
		UserID: userID,
		Email:  request.Email,
		Role:   request.Role,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	return uc.login(ctx, user, request.Password)
}

func (uc *authUsecase) LoginUserByPhone(ctx context.Context, request *requests.PhoneLogin) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUserByPhone called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByPhone(ctx, request.Phone)
	if err != nil {
		return nil, err
	}
	return uc.login(ctx, user, request.Password)
}

// login is shared by the email and phone paths. Unknown accounts and
// wrong passwords produce the same error.
func (uc *authUsecase) login(ctx context.Context, user *models.User, password string) (*responses.LoginUser, error) {
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !user.IsVerified {
		if err := uc.issueOTP(ctx, user); err != nil {
			return nil, err
		}
		// The id lets the client go straight to verify-otp.
		notVerified := exceptions.ErrAccountNotVerified(nil)
		notVerified.Data = &responses.VerificationRequired{UserID: user.ID}
		return nil, notVerified
	}

	token, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{
		Token: token,
		User:  users.BuildUserProfile(user),
	}, nil
}

func (uc *authUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("no account %s", request.UserID))
	}

	now := time.Now()
	if !user.HasLiveOTP(now) || user.OTP != request.OTP {
		return nil, exceptions.ErrOTPInvalidOrExpired(nil)
	}

	// Single use: the code dies with this update regardless of what the
	// caller does next.
	user.OTP = ""
	user.OTPExpiry = nil
	user.IsVerified = true
	user.UpdatedAt = now
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{
		Token: token,
		User:  users.BuildUserProfile(user),
	}, nil
}

func (uc *authUsecase) ResendOTP(ctx context.Context, request *requests.ResendOTP) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResendOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(fmt.Errorf("no account %s", request.UserID))
	}
	if user.IsVerified {
		// Nothing to verify; report success to avoid leaking state.
		return nil
	}

	return uc.issueOTP(ctx, user)
}

func (uc *authUsecase) LogoutUser(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	return uc.SessionService.DestroySession(ctx, session.SessionID)
}

// issueOTP overwrites whatever code is outstanding, persists the new
// one, then hands the email to the queue. There is never more than one
// live code per account.
func (uc *authUsecase) issueOTP(ctx context.Context, user *models.User) error {
	otp, otpExpiry, err := uc.mintOTP(ctx, user.Email)
	if err != nil {
		return err
	}

	user.OTP = otp
	user.OTPExpiry = &otpExpiry
	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	return uc.dispatchOTPEmail(ctx, user.Email, otp)
}

func (uc *authUsecase) mintOTP(ctx context.Context, email string) (string, time.Time, error) {
	allowed, err := uc.OTPRateLimiter.Allow(ctx, email)
	if err != nil {
		return "", time.Time{}, err
	}
	if !allowed {
		return "", time.Time{}, exceptions.ErrOTPRateLimited(nil)
	}

	otp, err := utils.GenerateOTP(constvars.OTP_LENGTH)
	if err != nil {
		return "", time.Time{}, exceptions.ErrOTPGenerate(err)
	}

	expiry := time.Now().Add(time.Duration(uc.InternalConfig.App.OTPExpiredTimeInMinutes) * time.Minute)
	return otp, expiry, nil
}

func (uc *authUsecase) dispatchOTPEmail(ctx context.Context, email, otp string) error {
	payload := &requests.EmailPayload{
		Subject:  constvars.EmailOTPSubject,
		From:     uc.InternalConfig.Mailer.EmailSender,
		To:       []string{email},
		HTMLBody: fmt.Sprintf(constvars.EmailBodyOTPHTMLFormat, otp, uc.InternalConfig.App.OTPExpiredTimeInMinutes),
	}
	return uc.MailerService.EnqueueEmail(ctx, payload)
}
