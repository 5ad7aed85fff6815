package programs

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/pkg/dto/requests"
)

type ProgramUsecase interface {
	ListPrograms(ctx context.Context) ([]models.Program, error)
	GetProgramByID(ctx context.Context, programID string) (*models.Program, error)
	CreateProgram(ctx context.Context, sessionData string, request *requests.CreateProgram) (*models.Program, error)
	UpdateProgram(ctx context.Context, programID string, request *requests.UpdateProgram) (*models.Program, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type ProgramRepository interface {
	FindAll(ctx context.Context) ([]models.Program, error)
	FindByID(ctx context.Context, programID string) (*models.Program, error)
	CreateProgram(ctx context.Context, programModel *models.Program) (*models.Program, error)
	UpdateProgram(ctx context.Context, programModel *models.Program) error
	DistinctCategories(ctx context.Context) ([]string, error)
}
