package programs

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/app/services/core/session"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/dto/requests"
	"healthinfo-service/internal/pkg/exceptions"
	"strings"

	"go.uber.org/zap"
)

type programUsecase struct {
	ProgramRepository ProgramRepository
	SessionService    session.SessionService
	Log               *zap.Logger
}

func NewProgramUsecase(programRepository ProgramRepository, sessionService session.SessionService, logger *zap.Logger) ProgramUsecase {
	return &programUsecase{
		ProgramRepository: programRepository,
		SessionService:    sessionService,
		Log:               logger,
	}
}

func (uc *programUsecase) ListPrograms(ctx context.Context) ([]models.Program, error) {
	return uc.ProgramRepository.FindAll(ctx)
}

func (uc *programUsecase) GetProgramByID(ctx context.Context, programID string) (*models.Program, error) {
	programModel, err := uc.ProgramRepository.FindByID(ctx, programID)
	if err != nil {
		return nil, err
	}
	if programModel == nil {
		return nil, exceptions.ErrProgramNotExist(nil)
	}
	return programModel, nil
}

func (uc *programUsecase) CreateProgram(ctx context.Context, sessionData string, request *requests.CreateProgram) (*models.Program, error) {
	if strings.TrimSpace(request.Name) == "" ||
		strings.TrimSpace(request.Description) == "" {
		return nil, exceptions.ErrProgramRequiredFields()
	}

	sessionModel, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	programModel := &models.Program{
		Name:        request.Name,
		Description: request.Description,
		Duration:    request.Duration,
		Status:      request.Status,
		Category:    request.Category,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		CreatedBy:   sessionModel.UserID,
	}
	if programModel.Status == "" {
		programModel.Status = constvars.ProgramStatusActive
	}

	createdProgram, err := uc.ProgramRepository.CreateProgram(ctx, programModel)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("programUsecase.CreateProgram succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("program_id", createdProgram.ID.Hex()),
	)
	return createdProgram, nil
}

// UpdateProgram reads before writing so a missing program surfaces as not
// found rather than a blind write. Concurrent updates race with
// last-write-wins semantics.
func (uc *programUsecase) UpdateProgram(ctx context.Context, programID string, request *requests.UpdateProgram) (*models.Program, error) {
	existingProgram, err := uc.ProgramRepository.FindByID(ctx, programID)
	if err != nil {
		return nil, err
	}
	if existingProgram == nil {
		return nil, exceptions.ErrProgramNotExist(nil)
	}

	existingProgram.SetDataForUpdate(request)

	err = uc.ProgramRepository.UpdateProgram(ctx, existingProgram)
	if err != nil {
		return nil, err
	}
	return existingProgram, nil
}

func (uc *programUsecase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.ProgramRepository.DistinctCategories(ctx)
}
