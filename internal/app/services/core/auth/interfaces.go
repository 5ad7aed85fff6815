package auth

import (
	"context"
	"healthinfo-service/internal/pkg/dto/requests"
	"healthinfo-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.Register) (*responses.UserProfile, error)
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Login, error)
	LogoutUser(ctx context.Context, sessionData string) error
}
