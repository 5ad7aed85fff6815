package enrollments

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/pkg/dto/requests"
)

type EnrollmentUsecase interface {
	ListEnrollments(ctx context.Context) ([]models.Enrollment, error)
	ListEnrollmentsByClient(ctx context.Context, clientID string) ([]models.Enrollment, error)
	ListEnrollmentsByProgram(ctx context.Context, programID string) ([]models.Enrollment, error)
	EnrollClient(ctx context.Context, sessionData string, request *requests.EnrollClient) (*models.Enrollment, error)
	TransitionEnrollment(ctx context.Context, enrollmentID string, request *requests.TransitionEnrollment) (*models.Enrollment, error)
}

type EnrollmentRepository interface {
	FindAll(ctx context.Context) ([]models.Enrollment, error)
	FindByClientID(ctx context.Context, clientID string) ([]models.Enrollment, error)
	FindByProgramID(ctx context.Context, programID string) ([]models.Enrollment, error)
	FindByID(ctx context.Context, enrollmentID string) (*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, enrollmentModel *models.Enrollment) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, enrollmentModel *models.Enrollment) error
}
