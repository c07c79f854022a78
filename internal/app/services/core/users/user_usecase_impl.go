package users

import (
	"context"
	"fmt"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s not found", session.UserID))
	}

	return BuildUserProfile(user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s not found", session.UserID))
	}

	if request.Phone != "" && request.Phone != user.Phone {
		existing, err := uc.UserRepository.FindByPhone(ctx, request.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrPhoneAlreadyRegistered(nil)
		}
		user.Phone = request.Phone
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Gender != "" {
		user.Gender = request.Gender
	}
	if request.DateOfBirth != "" {
		user.DateOfBirth = request.DateOfBirth
	}
	if request.BloodType != "" {
		user.BloodType = request.BloodType
	}
	if request.EmergencyContact != "" {
		user.EmergencyContact = request.EmergencyContact
	}
	if request.ProfilePicture != "" {
		user.ProfilePicture = request.ProfilePicture
	}
	user.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return BuildUserProfile(user), nil
}

// BuildUserProfile maps the account record into the response shape,
// dropping the password and OTP fields on the floor.
func BuildUserProfile(user *models.User) *responses.UserProfile {
	profile := &responses.UserProfile{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Phone:            user.Phone,
		Role:             user.Role,
		IsVerified:       user.IsVerified,
		Gender:           user.Gender,
		DateOfBirth:      user.DateOfBirth,
		BloodType:        user.BloodType,
		EmergencyContact: user.EmergencyContact,
		ProfilePicture:   user.ProfilePicture,
	}
	if !user.CreatedAt.IsZero() {
		profile.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}
	return profile
}
