package session

import (
	"context"
	"healthinfo-service/internal/app/config"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/app/services/shared/redis"
	"healthinfo-service/internal/pkg/exceptions"
	"healthinfo-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository redis.RedisRepository, internalConfig *config.InternalConfig) SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	sessionModel := models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
	}

	sessionTTL := time.Duration(s.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	err := s.RedisRepository.Set(ctx, sessionModel.SessionID, sessionModel, sessionTTL)
	if err != nil {
		return "", err
	}

	return utils.GenerateSessionJWT(sessionModel.SessionID, s.InternalConfig.JWT.Secret, s.InternalConfig.JWT.ExpTimeInHour)
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	sessionModel := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), sessionModel)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	return sessionModel, nil
}

func (s *sessionService) DestroySession(ctx context.Context, sessionData string) error {
	sessionModel, err := s.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return s.RedisRepository.Delete(ctx, sessionModel.SessionID)
}
