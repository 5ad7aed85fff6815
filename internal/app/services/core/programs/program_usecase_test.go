package programs

import (
	"context"
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

type fakeProgramRepository struct {
	programs    map[string]*models.Program
	insertCalls int
	updateCalls int
}

func newFakeProgramRepository() *fakeProgramRepository {
	return &fakeProgramRepository{programs: make(map[string]*models.Program)}
}

func (f *fakeProgramRepository) FindAll(ctx context.Context) ([]models.Program, error) {
	all := make([]models.Program, 0, len(f.programs))
	for _, programModel := range f.programs {
		all = append(all, *programModel)
	}
	return all, nil
}

func (f *fakeProgramRepository) FindByID(ctx context.Context, programID string) (*models.Program, error) {
	programModel, ok := f.programs[programID]
	if !ok {
		return nil, nil
	}
	copied := *programModel
	return &copied, nil
}

func (f *fakeProgramRepository) CreateProgram(ctx context.Context, programModel *models.Program) (*models.Program, error) {
	f.insertCalls++
	if programModel.CreatedAt.IsZero() {
		programModel.CreatedAt = time.Now()
	}
	programModel.ID = primitive.NewObjectID()
	f.programs[programModel.ID.Hex()] = programModel
	return programModel, nil
}

func (f *fakeProgramRepository) UpdateProgram(ctx context.Context, programModel *models.Program) error {
	f.updateCalls++
	f.programs[programModel.ID.Hex()] = programModel
	return nil
}

func (f *fakeProgramRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, programModel := range f.programs {
		if programModel.Category == "" || seen[programModel.Category] {
			continue
		}
		seen[programModel.Category] = true
		categories = append(categories, programModel.Category)
	}
	return categories, nil
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

func newTestProgramUsecase(repo *fakeProgramRepository) ProgramUsecase {
	sessionService := &fakeSessionService{session: &models.Session{UserID: "user-1"}}
	return NewProgramUsecase(repo, sessionService, zap.NewNop())
}

func TestProgramUsecase_CreateProgram(t *testing.T) {
	t.Run("creates program with defaults", func(t *testing.T) {
		repo := newFakeProgramRepository()
		uc := newTestProgramUsecase(repo)

		created, err := uc.CreateProgram(context.Background(), "{}", &requests.CreateProgram{
			Name:        "Wellness Basics",
			Description: "Twelve week introduction",
		})

		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, "user-1", created.CreatedBy)
		assert.Equal(t, constvars.ProgramStatusActive, created.Status)
	})

	t.Run("rejects missing required fields without writing", func(t *testing.T) {
		repo := newFakeProgramRepository()
		uc := newTestProgramUsecase(repo)

		_, err := uc.CreateProgram(context.Background(), "{}", &requests.CreateProgram{
			Name: "Wellness Basics",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Zero(t, repo.insertCalls)
	})
}

func intPtr(v int) *int {
	return &v
}

func TestProgramUsecase_UpdateProgram(t *testing.T) {
	t.Run("merges only provided fields", func(t *testing.T) {
		repo := newFakeProgramRepository()
		uc := newTestProgramUsecase(repo)

		created, err := uc.CreateProgram(context.Background(), "{}", &requests.CreateProgram{
			Name:        "Wellness Basics",
			Description: "Twelve week introduction",
			Duration:    12,
			Category:    "wellness",
		})
		require.NoError(t, err)

		updated, err := uc.UpdateProgram(context.Background(), created.ID.Hex(), &requests.UpdateProgram{
			Duration: intPtr(16),
		})

		require.NoError(t, err)
		assert.Equal(t, 16, updated.Duration)
		assert.Equal(t, "Wellness Basics", updated.Name)
		assert.Equal(t, "wellness", updated.Category)
	})

	t.Run("explicit zero duration is applied", func(t *testing.T) {
		repo := newFakeProgramRepository()
		uc := newTestProgramUsecase(repo)

		created, err := uc.CreateProgram(context.Background(), "{}", &requests.CreateProgram{
			Name:        "Wellness Basics",
			Description: "Twelve week introduction",
			Duration:    12,
		})
		require.NoError(t, err)

		updated, err := uc.UpdateProgram(context.Background(), created.ID.Hex(), &requests.UpdateProgram{
			Duration: intPtr(0),
		})

		require.NoError(t, err)
		assert.Equal(t, 0, updated.Duration)
		assert.Equal(t, "Wellness Basics", updated.Name)
	})

	t.Run("absent duration keeps stored value", func(t *testing.T) {
		repo := newFakeProgramRepository()
		uc := newTestProgramUsecase(repo)

		created, err := uc.CreateProgram(context.Background(), "{}", &requests.CreateProgram{
			Name:        "Wellness Basics",
			Description: "Twelve week introduction",
			Duration:    12,
		})
		require.NoError(t, err)

		updated, err := uc.UpdateProgram(context.Background(), created.ID.Hex(), &requests.UpdateProgram{
			Name: "Wellness Fundamentals",
		})

		require.NoError(t, err)
		assert.Equal(t, 12, updated.Duration)
		assert.Equal(t, "Wellness Fundamentals", updated.Name)
	})

	t.Run("unknown id yields not found without writing", func(t *testing.T) {
		repo := newFakeProgramRepository()
		uc := newTestProgramUsecase(repo)

		_, err := uc.UpdateProgram(context.Background(), "nonexistent-id", &requests.UpdateProgram{
			Duration: intPtr(16),
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Zero(t, repo.updateCalls)
	})
}

func TestProgramUsecase_ListCategories(t *testing.T) {
	repo := newFakeProgramRepository()
	uc := newTestProgramUsecase(repo)

	seed := []*requests.CreateProgram{
		{Name: "Wellness Basics", Description: "d", Category: "wellness"},
		{Name: "Wellness Advanced", Description: "d", Category: "wellness"},
		{Name: "Nutrition 101", Description: "d", Category: "nutrition"},
		{Name: "Uncategorized", Description: "d"},
	}
	for _, request := range seed {
		_, err := uc.CreateProgram(context.Background(), "{}", request)
		require.NoError(t, err)
	}

	categories, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"wellness", "nutrition"}, categories)
}
