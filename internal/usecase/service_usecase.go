package usecase

import (
	"context"

	"boral/internal/domain/entity"
)

// ServiceInput holds every owner-editable service field. It is used for creation and full updates.
type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	Duration    *string
	Category    string
	Image       *string
}

// ServiceUsecase defines management of the bookable services offered by stores.
type ServiceUsecase interface {
	ListServices(ctx context.Context, category string) ([]*entity.Service, error)
	ListStoreServices(ctx context.Context, storeID string) ([]*entity.Service, error)
	CreateService(ctx context.Context, callerID, storeID string, input *ServiceInput) (*entity.Service, error)
	UpdateService(ctx context.Context, callerID, serviceID string, input *ServiceInput) (*entity.Service, error)
	DeleteService(ctx context.Context, callerID, serviceID string) error
}
