package auth

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (string, error) {
	r.nextID++
	id := fmt.Sprintf("user-%d", r.nextID)
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	for _, user := range r.users {
		if user.Phone == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeSessionService struct {
	created   int
	destroyed []string
}

func (s *fakeSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	s.created++
	return fmt.Sprintf("token-%d", s.created), nil
}

func (s *fakeSessionService) ResolveToken(ctx context.Context, token string) (*models.Session, error) {
	return nil, exceptions.ErrTokenInvalidOrExpired(nil)
}

func (s *fakeSessionService) DestroySession(ctx context.Context, sessionID string) error {
	s.destroyed = append(s.destroyed, sessionID)
	return nil
}

type fakeMailer struct {
	sent []*requests.EmailPayload
}

func (m *fakeMailer) EnqueueEmail(ctx context.Context, payload *requests.EmailPayload) error {
	m.sent = append(m.sent, payload)
	return nil
}

type fakeRateLimiter struct {
	allowed bool
	calls   int
}

func (l *fakeRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.calls++
	return l.allowed, nil
}

type authFixture struct {
	usecase  contracts.AuthUsecase
	userRepo *fakeUserRepo
	sessions *fakeSessionService
	mailer   *fakeMailer
	limiter  *fakeRateLimiter
}

func setupAuthUsecase() *authFixture {
	fixture := &authFixture{
		userRepo: newFakeUserRepo(),
		sessions: &fakeSessionService{},
		mailer:   &fakeMailer{},
		limiter:  &fakeRateLimiter{allowed: true},
	}
	internalConfig := &config.InternalConfig{
		App: config.App{
			OTPExpiredTimeInMinutes: 10,
		},
		Mailer: config.AppMailer{
			EmailSender: "no-reply@mediconnect.test",
		},
	}
	fixture.usecase = NewAuthUsecase(
		fixture.userRepo,
		fixture.sessions,
		fixture.mailer,
		fixture.limiter,
		internalConfig,
		zap.NewNop(),
	)
	return fixture
}

func (f *authFixture) seedUser(t *testing.T, email, phone, password string, verified bool) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:       "Test Account",
		Email:      email,
		Phone:      phone,
		Password:   hashed,
		Role:       constvars.RolePatient,
		IsVerified: verified,
	}
	id, err := f.userRepo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	return f.userRepo.users[id]
}

func registerRequest() *requests.RegisterUser {
	return &requests.RegisterUser{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "Str0ng@Pass",
		Phone:    "+919876543210",
		Role:     constvars.RolePatient,
	}
}

func devMessage(t *testing.T, err error) string {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T: %v", err, err)
	return customErr.DevMessage
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Registration", func(t *testing.T) {
		fixture := setupAuthUsecase()

		result, err := fixture.usecase.RegisterUser(ctx, registerRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, result.UserID)
		assert.Equal(t, "priya@example.com", result.Email)

		stored, err := fixture.userRepo.FindByEmail(ctx, "priya@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.False(t, stored.IsVerified, "new accounts start unverified")
		assert.Len(t, stored.OTP, constvars.OTP_LENGTH)
		require.NotNil(t, stored.OTPExpiry)
		assert.True(t, stored.OTPExpiry.After(time.Now()))
		assert.NotEqual(t, "Str0ng@Pass", stored.Password, "password must be stored hashed")

		require.Len(t, fixture.mailer.sent, 1)
		assert.Equal(t, []string{"priya@example.com"}, fixture.mailer.sent[0].To)
		assert.Contains(t, fixture.mailer.sent[0].HTMLBody, stored.OTP)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		fixture := setupAuthUsecase()
		fixture.seedUser(t, "priya@example.com", "+911111111111", "Str0ng@Pass", true)

		_, err := fixture.usecase.RegisterUser(ctx, registerRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevEmailAlreadyExists, devMessage(t, err))
	})

	t.Run("Duplicate Phone", func(t *testing.T) {
		fixture := setupAuthUsecase()
		fixture.seedUser(t, "other@example.com", "+919876543210", "Str0ng@Pass", true)

		_, err := fixture.usecase.RegisterUser(ctx, registerRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevPhoneAlreadyRegistered, devMessage(t, err))
	})

	t.Run("OTP Rate Limited", func(t *testing.T) {
		fixture := setupAuthUsecase()
		fixture.limiter.allowed = false

		_, err := fixture.usecase.RegisterUser(ctx, registerRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevOTPRateLimited, devMessage(t, err))
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Login", func(t *testing.T) {
		fixture := setupAuthUsecase()
		fixture.seedUser(t, "priya@example.com", "+919876543210", "Str0ng@Pass", true)

		result, err := fixture.usecase.LoginUser(ctx, &requests.LoginUser{Email: "priya@example.com", Password: "Str0ng@Pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "priya@example.com", result.User.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		fixture := setupAuthUsecase()
		fixture.seedUser(t, "priya@example.com", "+919876543210", "Str0ng@Pass", true)

		_, err := fixture.usecase.LoginUser(ctx, &requests.LoginUser{Email: "priya@example.com", Password: "wrong-pass1"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevInvalidCredentials, devMessage(t, err))
	})

	t.Run("Unknown Email Matches Wrong Password", func(t *testing.T) {
		fixture := setupAuthUsecase()

		_, err := fixture.usecase.LoginUser(ctx, &requests.LoginUser{Email: "ghost@example.com", Password: "whatever12"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevInvalidCredentials, devMessage(t, err),
			"unknown accounts and bad passwords must be indistinguishable")
	})

	t.Run("Unverified Account Reissues OTP", func(t *testing.T) {
		fixture := setupAuthUsecase()
		seeded := fixture.seedUser(t, "priya@example.com", "+919876543210", "Str0ng@Pass", false)

		_, err := fixture.usecase.LoginUser(ctx, &requests.LoginUser{Email: "priya@example.com", Password: "Str0ng@Pass"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevAccountNotVerified, devMessage(t, err))
		assert.Len(t, fixture.mailer.sent, 1, "a fresh OTP email should go out")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		required, ok := customErr.Data.(*responses.VerificationRequired)
		require.True(t, ok, "the rejection should carry the account id")
		assert.Equal(t, seeded.ID, required.UserID)

		stored, _ := fixture.userRepo.FindByEmail(ctx, "priya@example.com")
		assert.NotEmpty(t, stored.OTP)
	})

	t.Run("Login By Phone", func(t *testing.T) {
		fixture := setupAuthUsecase()
		fixture.seedUser(t, "priya@example.com", "+919876543210", "Str0ng@Pass", true)

		result, err := fixture.usecase.LoginUserByPhone(ctx, &requests.PhoneLogin{Phone: "+919876543210", Password: "Str0ng@Pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()

	seedWithOTP := func(t *testing.T, fixture *authFixture, otp string, expiry time.Time) string {
		t.Helper()
		user := fixture.seedUser(t, "priya@example.com", "+919876543210", "Str0ng@Pass", false)
		user.OTP = otp
		user.OTPExpiry = &expiry
		require.NoError(t, fixture.userRepo.UpdateUser(ctx, user))
		return user.ID
	}

	t.Run("Successful Verification", func(t *testing.T) {
		fixture := setupAuthUsecase()
		userID := seedWithOTP(t, fixture, "123456", time.Now().Add(10*time.Minute))

		result, err := fixture.usecase.VerifyOTP(ctx, &requests.VerifyOTP{UserID: userID, OTP: "123456"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token, "verification logs the user straight in")

		stored, _ := fixture.userRepo.FindByEmail(ctx, "priya@example.com")
		assert.True(t, stored.IsVerified)
		assert.Empty(t, stored.OTP)
		assert.Nil(t, stored.OTPExpiry)
	})

	t.Run("Wrong Code", func(t *testing.T) {
		fixture := setupAuthUsecase()
		userID := seedWithOTP(t, fixture, "123456", time.Now().Add(10*time.Minute))

		_, err := fixture.usecase.VerifyOTP(ctx, &requests.VerifyOTP{UserID: userID, OTP: "654321"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevOTPInvalid, devMessage(t, err))
	})

	t.Run("Expired Code", func(t *testing.T) {
		fixture := setupAuthUsecase()
		userID := seedWithOTP(t, fixture, "123456", time.Now().Add(-time.Minute))

		_, err := fixture.usecase.VerifyOTP(ctx, &requests.VerifyOTP{UserID: userID, OTP: "123456"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevOTPInvalid, devMessage(t, err),
			"expired and wrong codes must be indistinguishable")
	})

	t.Run("Code Is Single Use", func(t *testing.T) {
		fixture := setupAuthUsecase()
		userID := seedWithOTP(t, fixture, "123456", time.Now().Add(10*time.Minute))

		_, err := fixture.usecase.VerifyOTP(ctx, &requests.VerifyOTP{UserID: userID, OTP: "123456"})
		require.NoError(t, err)

		_, err = fixture.usecase.VerifyOTP(ctx, &requests.VerifyOTP{UserID: userID, OTP: "123456"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevOTPInvalid, devMessage(t, err))
	})

	t.Run("Unknown Account", func(t *testing.T) {
		fixture := setupAuthUsecase()

		_, err := fixture.usecase.VerifyOTP(ctx, &requests.VerifyOTP{UserID: "ghost", OTP: "123456"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevUserNotFound, devMessage(t, err))
	})
}

func TestResendOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("Reissues For Unverified Account", func(t *testing.T) {
		fixture := setupAuthUsecase()
		user := fixture.seedUser(t, "priya@example.com", "+919876543210", "Str0ng@Pass", false)
		user.OTP = "111111"
		expiry := time.Now().Add(10 * time.Minute)
		user.OTPExpiry = &expiry
		require.NoError(t, fixture.userRepo.UpdateUser(ctx, user))

		err := fixture.usecase.ResendOTP(ctx, &requests.ResendOTP{UserID: user.ID})
		require.NoError(t, err)

		stored, _ := fixture.userRepo.FindByEmail(ctx, "priya@example.com")
		assert.NotEqual(t, "111111", stored.OTP, "resend replaces the outstanding code")
		assert.Len(t, fixture.mailer.sent, 1)
	})

	t.Run("Already Verified Is A Silent Success", func(t *testing.T) {
		fixture := setupAuthUsecase()
		user := fixture.seedUser(t, "priya@example.com", "+919876543210", "Str0ng@Pass", true)

		err := fixture.usecase.ResendOTP(ctx, &requests.ResendOTP{UserID: user.ID})
		assert.NoError(t, err)
		assert.Empty(t, fixture.mailer.sent)
		assert.Zero(t, fixture.limiter.calls, "no code should be minted for a verified account")
	})

	t.Run("Rate Limited", func(t *testing.T) {
		fixture := setupAuthUsecase()
		user := fixture.seedUser(t, "priya@example.com", "+919876543210", "Str0ng@Pass", false)
		fixture.limiter.allowed = false

		err := fixture.usecase.ResendOTP(ctx, &requests.ResendOTP{UserID: user.ID})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrDevOTPRateLimited, devMessage(t, err))
	})
}

func TestLogoutUser(t *testing.T) {
	fixture := setupAuthUsecase()

	session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RolePatient}
	err := fixture.usecase.LogoutUser(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, []string{"sess-1"}, fixture.sessions.destroyed)
}