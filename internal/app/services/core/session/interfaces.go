package session

import (
	"context"
	"healthinfo-service/internal/app/models"
)

type SessionService interface {
	// CreateSession stores a session for the user and returns a signed token
	// carrying the session id.
	CreateSession(ctx context.Context, user *models.User) (string, error)
	// ParseSessionData decodes the raw session payload that the authentication
	// middleware placed on the request context.
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DestroySession(ctx context.Context, sessionData string) error
}
