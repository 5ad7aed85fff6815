package auth

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/app/services/core/session"
	"healthinfo-service/internal/app/services/core/users"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/dto/requests"
	"healthinfo-service/internal/pkg/dto/responses"
	"healthinfo-service/internal/pkg/exceptions"
	"healthinfo-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository users.UserRepository
	SessionService session.SessionService
	Log            *zap.Logger
}

func NewAuthUsecase(userRepository users.UserRepository, sessionService session.SessionService, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.Register) (*responses.UserProfile, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	userModel := &models.User{
		Username: request.Username,
		Email:    request.Email,
		Role:     request.Role,
		Fullname: request.Fullname,
		Password: hashedPassword,
	}
	if userModel.Role == "" {
		userModel.Role = constvars.UserRoleDefault
	}
	if userModel.Fullname == "" {
		userModel.Fullname = request.Username
	}

	createdUser, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", createdUser.ID.Hex()),
	)

	return &responses.UserProfile{
		ID:        createdUser.ID.Hex(),
		Username:  createdUser.Username,
		Email:     createdUser.Email,
		Role:      createdUser.Role,
		Fullname:  createdUser.Fullname,
		CreatedAt: createdUser.CreatedAt,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		User: &responses.UserProfile{
			ID:        user.ID.Hex(),
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			Fullname:  user.Fullname,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	return uc.SessionService.DestroySession(ctx, sessionData)
}
