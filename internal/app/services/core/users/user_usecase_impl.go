package users

import (
	"context"
	"healthinfo-service/internal/app/services/core/session"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/dto/responses"
	"healthinfo-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository UserRepository
	SessionService session.SessionService
	Log            *zap.Logger
}

func NewUserUsecase(userRepository UserRepository, sessionService session.SessionService, logger *zap.Logger) UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	sessionModel, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, sessionModel.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("userUsecase.GetUserProfileBySession user missing for session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("user_id", sessionModel.UserID),
		)
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.UserProfile{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Fullname:  user.Fullname,
		CreatedAt: user.CreatedAt,
	}, nil
}
