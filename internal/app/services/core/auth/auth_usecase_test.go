package auth

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/dto/requests"
	"healthinfo-service/internal/pkg/exceptions"
	"healthinfo-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	usersByEmail map[string]*models.User
	insertCalls  int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{usersByEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, userModel *models.User) (*models.User, error) {
	f.insertCalls++
	userModel.ID = primitive.NewObjectID()
	f.usersByEmail[userModel.Email] = userModel
	return userModel, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	userModel, ok := f.usersByEmail[email]
	if !ok {
		return nil, nil
	}
	return userModel, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	for _, userModel := range f.usersByEmail {
		if userModel.ID.Hex() == userID {
			return userModel, nil
		}
	}
	return nil, nil
}

type fakeSessionService struct {
	token        string
	destroyCalls int
}

func (f *fakeSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	return f.token, nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return &models.Session{SessionID: "session-1"}, nil
}

func (f *fakeSessionService) DestroySession(ctx context.Context, sessionData string) error {
	f.destroyCalls++
	return nil
}

func TestAuthUsecase_RegisterUser(t *testing.T) {
	t.Run("registers user with defaults and hashed password", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := NewAuthUsecase(repo, &fakeSessionService{}, zap.NewNop())

		profile, err := uc.RegisterUser(context.Background(), &requests.Register{
			Username: "jdoe",
			Email:    "jdoe@example.com",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, profile.ID)
		assert.Equal(t, constvars.UserRoleDefault, profile.Role)
		assert.Equal(t, "jdoe", profile.Fullname)

		stored := repo.usersByEmail["jdoe@example.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "supersecret", stored.Password)
		assert.True(t, utils.CheckPasswordHash("supersecret", stored.Password))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := NewAuthUsecase(repo, &fakeSessionService{}, zap.NewNop())

		_, err := uc.RegisterUser(context.Background(), &requests.Register{
			Username: "jdoe",
			Email:    "jdoe@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)

		_, err = uc.RegisterUser(context.Background(), &requests.Register{
			Username: "other",
			Email:    "jdoe@example.com",
			Password: "othersecret",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 1, repo.insertCalls)
	})
}

func TestAuthUsecase_LoginUser(t *testing.T) {
	repo := newFakeUserRepository()
	uc := NewAuthUsecase(repo, &fakeSessionService{token: "jwt-token"}, zap.NewNop())

	_, err := uc.RegisterUser(context.Background(), &requests.Register{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	t.Run("returns token and profile on valid credentials", func(t *testing.T) {
		result, err := uc.LoginUser(context.Background(), &requests.Login{
			Email:    "jdoe@example.com",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", result.Token)
		require.NotNil(t, result.User)
		assert.Equal(t, "jdoe", result.User.Username)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := uc.LoginUser(context.Background(), &requests.Login{
			Email:    "jdoe@example.com",
			Password: "wrongsecret",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		_, err := uc.LoginUser(context.Background(), &requests.Login{
			Email:    "nobody@example.com",
			Password: "supersecret",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAuthUsecase_LogoutUser(t *testing.T) {
	sessionService := &fakeSessionService{}
	uc := NewAuthUsecase(newFakeUserRepository(), sessionService, zap.NewNop())

	err := uc.LogoutUser(context.Background(), `{"sessionId":"session-1"}`)
	require.NoError(t, err)
	assert.Equal(t, 1, sessionService.destroyCalls)
}
