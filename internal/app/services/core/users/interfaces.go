package users

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
}
