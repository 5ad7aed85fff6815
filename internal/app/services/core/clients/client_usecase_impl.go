package clients

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

type clientUsecase struct {
	ClientRepository ClientRepository
	SessionService   session.SessionService
	Log              *zap.Logger
}

func NewClientUsecase(clientRepository ClientRepository, sessionService session.SessionService, logger *zap.Logger) ClientUsecase {
	return &clientUsecase{
		ClientRepository: clientRepository,
		SessionService:   sessionService,
		Log:              logger,
	}
}

func (uc *clientUsecase) ListClients(ctx context.Context) ([]models.Client, error) {
	return uc.ClientRepository.FindAll(ctx)
}

func (uc *clientUsecase) GetClientByID(ctx context.Context, clientID string) (*models.Client, error) {
	clientModel, err := uc.ClientRepository.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if clientModel == nil {
		return nil, exceptions.ErrClientNotExist(nil)
	}
	return clientModel, nil
}

func (uc *clientUsecase) CreateClient(ctx context.Context, sessionData string, request *requests.CreateClient) (*models.Client, error) {
	if strings.TrimSpace(request.FirstName) == "" ||
		strings.TrimSpace(request.LastName) == "" ||
		strings.TrimSpace(request.Email) == "" {
		return nil, exceptions.ErrClientRequiredFields()
	}

	sessionModel, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	clientModel := &models.Client{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		Phone:       request.Phone,
		DateOfBirth: request.DateOfBirth,
		Address:     request.Address,
		Notes:       request.Notes,
		Status:      request.Status,
		CreatedBy:   sessionModel.UserID,
	}
	if clientModel.Status == "" {
		clientModel.Status = constvars.ClientStatusActive
	}

	createdClient, err := uc.ClientRepository.CreateClient(ctx, clientModel)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clientUsecase.CreateClient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("client_id", createdClient.ID.Hex()),
	)
	return createdClient, nil
}

// UpdateClient reads before writing so a missing client surfaces as not
// found rather than a blind write. The read and the write are two separate
// store calls; concurrent updates race with last-write-wins semantics.
func (uc *clientUsecase) UpdateClient(ctx context.Context, clientID string, request *requests.UpdateClient) (*models.Client, error) {
	existingClient, err := uc.ClientRepository.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if existingClient == nil {
		return nil, exceptions.ErrClientNotExist(nil)
	}

	existingClient.SetDataForUpdate(request)

	err = uc.ClientRepository.UpdateClient(ctx, existingClient)
	if err != nil {
		return nil, err
	}
	return existingClient, nil
}

// SearchClients loads the whole collection and filters in memory. Fine at
// the current dataset size; swap in an indexed search collaborator behind
// this contract if the collection grows.
func (uc *clientUsecase) SearchClients(ctx context.Context, term string) ([]models.Client, error) {
	searchTerm := strings.ToLower(strings.TrimSpace(term))
	if searchTerm == "" {
		return nil, exceptions.ErrSearchTermRequired()
	}

	allClients, err := uc.ClientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Client, 0)
	for _, clientModel := range allClients {
		if strings.Contains(strings.ToLower(clientModel.FirstName), searchTerm) ||
			strings.Contains(strings.ToLower(clientModel.LastName), searchTerm) ||
			strings.Contains(strings.ToLower(clientModel.Email), searchTerm) ||
			strings.Contains(clientModel.Phone, searchTerm) {
			matched = append(matched, clientModel)
		}
	}
	return matched, nil
}
