package clients

import (
	"context"
	"errors"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/dto/requests"
	"healthinfo-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeClientRepository struct {
	clients     map[string]*models.Client
	insertCalls int
	updateCalls int
	findAllErr  error
}

func newFakeClientRepository() *fakeClientRepository {
	return &fakeClientRepository{clients: make(map[string]*models.Client)}
}

func (f *fakeClientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	all := make([]models.Client, 0, len(f.clients))
	for _, clientModel := range f.clients {
		all = append(all, *clientModel)
	}
	return all, nil
}

func (f *fakeClientRepository) FindByID(ctx context.Context, clientID string) (*models.Client, error) {
	clientModel, ok := f.clients[clientID]
	if !ok {
		return nil, nil
	}
	copied := *clientModel
	return &copied, nil
}

func (f *fakeClientRepository) CreateClient(ctx context.Context, clientModel *models.Client) (*models.Client, error) {
	f.insertCalls++
	if clientModel.CreatedAt.IsZero() {
		clientModel.CreatedAt = time.Now()
	}
	clientModel.ID = primitive.NewObjectID()
	f.clients[clientModel.ID.Hex()] = clientModel
	return clientModel, nil
}

func (f *fakeClientRepository) UpdateClient(ctx context.Context, clientModel *models.Client) error {
	f.updateCalls++
	f.clients[clientModel.ID.Hex()] = clientModel
	return nil
}

type fakeSessionService struct {
	session *models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	return "token", nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	if f.session == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return f.session, nil
}

func (f *fakeSessionService) DestroySession(ctx context.Context, sessionData string) error {
	return nil
}

func newTestClientUsecase(repo *fakeClientRepository) ClientUsecase {
	sessionService := &fakeSessionService{session: &models.Session{UserID: "user-1"}}
	return NewClientUsecase(repo, sessionService, zap.NewNop())
}

func TestClientUsecase_CreateClient(t *testing.T) {
	t.Run("creates client with defaults and creator identity", func(t *testing.T) {
		repo := newFakeClientRepository()
		uc := newTestClientUsecase(repo)

		created, err := uc.CreateClient(context.Background(), "{}", &requests.CreateClient{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
		})

		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, "user-1", created.CreatedBy)
		assert.Equal(t, constvars.ClientStatusActive, created.Status)
	})

	t.Run("rejects missing required fields without writing", func(t *testing.T) {
		repo := newFakeClientRepository()
		uc := newTestClientUsecase(repo)

		_, err := uc.CreateClient(context.Background(), "{}", &requests.CreateClient{
			FirstName: "Jane",
		})

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Zero(t, repo.insertCalls)
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		repo := newFakeClientRepository()
		uc := newTestClientUsecase(repo)

		created, err := uc.CreateClient(context.Background(), "{}", &requests.CreateClient{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
			Status:    constvars.ClientStatusInactive,
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.ClientStatusInactive, created.Status)
	})
}

func TestClientUsecase_GetClientByID(t *testing.T) {
	repo := newFakeClientRepository()
	uc := newTestClientUsecase(repo)

	created, err := uc.CreateClient(context.Background(), "{}", &requests.CreateClient{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	})
	require.NoError(t, err)

	t.Run("returns the stored client", func(t *testing.T) {
		found, err := uc.GetClientByID(context.Background(), created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created.Email, found.Email)
	})

	t.Run("read does not change the document", func(t *testing.T) {
		first, err := uc.GetClientByID(context.Background(), created.ID.Hex())
		require.NoError(t, err)
		second, err := uc.GetClientByID(context.Background(), created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := uc.GetClientByID(context.Background(), "nonexistent-id")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestClientUsecase_UpdateClient(t *testing.T) {
	t.Run("merges only provided fields", func(t *testing.T) {
		repo := newFakeClientRepository()
		uc := newTestClientUsecase(repo)

		created, err := uc.CreateClient(context.Background(), "{}", &requests.CreateClient{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
			Phone:     "555-0100",
		})
		require.NoError(t, err)

		updated, err := uc.UpdateClient(context.Background(), created.ID.Hex(), &requests.UpdateClient{
			Phone: "555-0199",
		})

		require.NoError(t, err)
		assert.Equal(t, "555-0199", updated.Phone)
		assert.Equal(t, "Jane", updated.FirstName)
		assert.Equal(t, "jane.doe@example.com", updated.Email)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("unknown id yields not found without writing", func(t *testing.T) {
		repo := newFakeClientRepository()
		uc := newTestClientUsecase(repo)

		_, err := uc.UpdateClient(context.Background(), "nonexistent-id", &requests.UpdateClient{
			Phone: "555-0199",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Zero(t, repo.updateCalls)
	})
}

func TestClientUsecase_SearchClients(t *testing.T) {
	repo := newFakeClientRepository()
	uc := newTestClientUsecase(repo)

	seed := []*requests.CreateClient{
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Phone: "555-0100"},
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: "555-0142"},
		{FirstName: "Maria", LastName: "Janeway", Email: "maria@example.com", Phone: "555-0777"},
	}
	for _, request := range seed {
		_, err := uc.CreateClient(context.Background(), "{}", request)
		require.NoError(t, err)
	}

	t.Run("matches case-insensitively across name fields", func(t *testing.T) {
		matched, err := uc.SearchClients(context.Background(), "JANE")
		require.NoError(t, err)
		assert.Len(t, matched, 2)
	})

	t.Run("matches email substring", func(t *testing.T) {
		matched, err := uc.SearchClients(context.Background(), "john.doe")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "John", matched[0].FirstName)
	})

	t.Run("matches phone substring", func(t *testing.T) {
		matched, err := uc.SearchClients(context.Background(), "0777")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "Maria", matched[0].FirstName)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		matched, err := uc.SearchClients(context.Background(), "zzz")
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("blank term is rejected", func(t *testing.T) {
		_, err := uc.SearchClients(context.Background(), "   ")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo.findAllErr = errors.New("connection reset")
		defer func() { repo.findAllErr = nil }()

		_, err := uc.SearchClients(context.Background(), "jane")
		assert.Error(t, err)
	})
}
