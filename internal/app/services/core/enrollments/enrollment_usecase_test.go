package enrollments

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

type fakeEnrollmentRepository struct {
	enrollments map[string]*models.Enrollment
	insertCalls int
	updateCalls int
}

func newFakeEnrollmentRepository() *fakeEnrollmentRepository {
	return &fakeEnrollmentRepository{enrollments: make(map[string]*models.Enrollment)}
}

func (f *fakeEnrollmentRepository) FindAll(ctx context.Context) ([]models.Enrollment, error) {
	all := make([]models.Enrollment, 0, len(f.enrollments))
	for _, enrollmentModel := range f.enrollments {
		all = append(all, *enrollmentModel)
	}
	return all, nil
}

func (f *fakeEnrollmentRepository) FindByClientID(ctx context.Context, clientID string) ([]models.Enrollment, error) {
	matched := make([]models.Enrollment, 0)
	for _, enrollmentModel := range f.enrollments {
		if enrollmentModel.ClientID == clientID {
			matched = append(matched, *enrollmentModel)
		}
	}
	return matched, nil
}

func (f *fakeEnrollmentRepository) FindByProgramID(ctx context.Context, programID string) ([]models.Enrollment, error) {
	matched := make([]models.Enrollment, 0)
	for _, enrollmentModel := range f.enrollments {
		if enrollmentModel.ProgramID == programID {
			matched = append(matched, *enrollmentModel)
		}
	}
	return matched, nil
}

func (f *fakeEnrollmentRepository) FindByID(ctx context.Context, enrollmentID string) (*models.Enrollment, error) {
	enrollmentModel, ok := f.enrollments[enrollmentID]
	if !ok {
		return nil, nil
	}
	copied := *enrollmentModel
	return &copied, nil
}

func (f *fakeEnrollmentRepository) CreateEnrollment(ctx context.Context, enrollmentModel *models.Enrollment) (*models.Enrollment, error) {
	f.insertCalls++
	enrollmentModel.ID = primitive.NewObjectID()
	f.enrollments[enrollmentModel.ID.Hex()] = enrollmentModel
	return enrollmentModel, nil
}

func (f *fakeEnrollmentRepository) UpdateEnrollment(ctx context.Context, enrollmentModel *models.Enrollment) error {
	f.updateCalls++
	f.enrollments[enrollmentModel.ID.Hex()] = enrollmentModel
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

type fakeEventPublisher struct {
	published  []string
	publishErr error
}

func (f *fakeEventPublisher) Publish(ctx context.Context, eventName string, payload interface{}) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, eventName)
	return nil
}

func newTestEnrollmentUsecase(repo *fakeEnrollmentRepository, publisher *fakeEventPublisher) EnrollmentUsecase {
	sessionService := &fakeSessionService{session: &models.Session{UserID: "user-1"}}
	return NewEnrollmentUsecase(repo, sessionService, publisher, zap.NewNop())
}

func TestEnrollmentUsecase_EnrollClient(t *testing.T) {
	t.Run("applies defaults and records enroller", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		publisher := &fakeEventPublisher{}
		uc := newTestEnrollmentUsecase(repo, publisher)

		created, err := uc.EnrollClient(context.Background(), "{}", &requests.EnrollClient{
			ClientID:  "client-1",
			ProgramID: "program-1",
		})

		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.Equal(t, constvars.EnrollmentStatusActive, created.Status)
		assert.False(t, created.EnrolledAt.IsZero())
		assert.Nil(t, created.CompletedAt)
		assert.Equal(t, "user-1", created.EnrolledBy)
		assert.Equal(t, []string{"enrollment.created"}, publisher.published)
	})

	t.Run("honours explicit status and enrolment time", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		uc := newTestEnrollmentUsecase(repo, &fakeEventPublisher{})

		enrolledAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		created, err := uc.EnrollClient(context.Background(), "{}", &requests.EnrollClient{
			ClientID:   "client-1",
			ProgramID:  "program-1",
			Status:     constvars.EnrollmentStatusCompleted,
			EnrolledAt: &enrolledAt,
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.EnrollmentStatusCompleted, created.Status)
		assert.Equal(t, enrolledAt, created.EnrolledAt)
	})

	t.Run("rejects missing references without writing", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		uc := newTestEnrollmentUsecase(repo, &fakeEventPublisher{})

		_, err := uc.EnrollClient(context.Background(), "{}", &requests.EnrollClient{
			ClientID: "client-1",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Zero(t, repo.insertCalls)
	})

	t.Run("allows duplicate enrollments", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		uc := newTestEnrollmentUsecase(repo, &fakeEventPublisher{})

		request := &requests.EnrollClient{ClientID: "client-1", ProgramID: "program-1"}
		_, err := uc.EnrollClient(context.Background(), "{}", request)
		require.NoError(t, err)
		_, err = uc.EnrollClient(context.Background(), "{}", request)
		require.NoError(t, err)

		assert.Equal(t, 2, repo.insertCalls)
	})

	t.Run("broker failure does not fail the enrollment", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		publisher := &fakeEventPublisher{publishErr: errors.New("broker down")}
		uc := newTestEnrollmentUsecase(repo, publisher)

		created, err := uc.EnrollClient(context.Background(), "{}", &requests.EnrollClient{
			ClientID:  "client-1",
			ProgramID: "program-1",
		})

		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
	})
}

func TestEnrollmentUsecase_ListEnrollmentsByClient(t *testing.T) {
	repo := newFakeEnrollmentRepository()
	uc := newTestEnrollmentUsecase(repo, &fakeEventPublisher{})

	seed := []*requests.EnrollClient{
		{ClientID: "client-1", ProgramID: "program-1"},
		{ClientID: "client-1", ProgramID: "program-2"},
		{ClientID: "client-2", ProgramID: "program-1"},
	}
	for _, request := range seed {
		_, err := uc.EnrollClient(context.Background(), "{}", request)
		require.NoError(t, err)
	}

	byClient, err := uc.ListEnrollmentsByClient(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	byProgram, err := uc.ListEnrollmentsByProgram(context.Background(), "program-1")
	require.NoError(t, err)
	assert.Len(t, byProgram, 2)

	none, err := uc.ListEnrollmentsByClient(context.Background(), "client-9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEnrollmentUsecase_TransitionEnrollment(t *testing.T) {
	enroll := func(t *testing.T, uc EnrollmentUsecase) *models.Enrollment {
		t.Helper()
		created, err := uc.EnrollClient(context.Background(), "{}", &requests.EnrollClient{
			ClientID:  "client-1",
			ProgramID: "program-1",
		})
		require.NoError(t, err)
		return created
	}

	t.Run("active to completed sets completedAt", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		publisher := &fakeEventPublisher{}
		uc := newTestEnrollmentUsecase(repo, publisher)
		created := enroll(t, uc)

		updated, err := uc.TransitionEnrollment(context.Background(), created.ID.Hex(), &requests.TransitionEnrollment{
			Status: constvars.EnrollmentStatusCompleted,
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.EnrollmentStatusCompleted, updated.Status)
		require.NotNil(t, updated.CompletedAt)
		assert.Contains(t, publisher.published, "enrollment.transitioned")
	})

	t.Run("active to cancelled leaves completedAt empty", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		uc := newTestEnrollmentUsecase(repo, &fakeEventPublisher{})
		created := enroll(t, uc)

		updated, err := uc.TransitionEnrollment(context.Background(), created.ID.Hex(), &requests.TransitionEnrollment{
			Status: constvars.EnrollmentStatusCancelled,
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.EnrollmentStatusCancelled, updated.Status)
		assert.Nil(t, updated.CompletedAt)
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		uc := newTestEnrollmentUsecase(repo, &fakeEventPublisher{})
		created := enroll(t, uc)

		_, err := uc.TransitionEnrollment(context.Background(), created.ID.Hex(), &requests.TransitionEnrollment{
			Status: constvars.EnrollmentStatusCancelled,
		})
		require.NoError(t, err)

		for _, target := range []string{
			constvars.EnrollmentStatusActive,
			constvars.EnrollmentStatusCompleted,
		} {
			_, err := uc.TransitionEnrollment(context.Background(), created.ID.Hex(), &requests.TransitionEnrollment{
				Status: target,
			})
			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		repo := newFakeEnrollmentRepository()
		uc := newTestEnrollmentUsecase(repo, &fakeEventPublisher{})

		_, err := uc.TransitionEnrollment(context.Background(), "nonexistent-id", &requests.TransitionEnrollment{
			Status: constvars.EnrollmentStatusCompleted,
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
