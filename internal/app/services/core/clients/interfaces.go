package clients

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/pkg/dto/requests"
)

type ClientUsecase interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*models.Client, error)
	CreateClient(ctx context.Context, sessionData string, request *requests.CreateClient) (*models.Client, error)
	UpdateClient(ctx context.Context, clientID string, request *requests.UpdateClient) (*models.Client, error)
	SearchClients(ctx context.Context, term string) ([]models.Client, error)
}

type ClientRepository interface {
	FindAll(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, clientID string) (*models.Client, error)
	CreateClient(ctx context.Context, clientModel *models.Client) (*models.Client, error)
	UpdateClient(ctx context.Context, clientModel *models.Client) error
}
