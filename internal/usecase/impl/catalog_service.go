package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "boral/internal/delivery/context"
	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	"boral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the ServiceUsecase interface for store services.
type catalogService struct {
	storeGuard

	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ServiceRepo repository.ServiceRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.ServiceUsecase {
	return &catalogService{
		storeGuard:  storeGuard{storeRepo: params.StoreRepo},
		serviceRepo: params.ServiceRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListServices lists services, optionally narrowed to one category.
func (srv *catalogService) ListServices(ctx context.Context, category string) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx, repository.ServiceFilter{Category: category, Limit: generalListLimit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// ListStoreServices lists the services of a store.
func (srv *catalogService) ListStoreServices(ctx context.Context, storeID string) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx, repository.ServiceFilter{StoreID: storeID, Limit: generalListLimit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store services")
	}

	return services, nil
}

// CreateService adds a service to a store owned by callerID.
func (srv *catalogService) CreateService(ctx context.Context, callerID, storeID string, input *usecase.ServiceInput) (*entity.Service, error) {
	if _, err := srv.requireStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	svc := &entity.Service{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyServiceInput(svc, input)

	if err := srv.serviceRepo.Create(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.log(ctx).Info("Service created", slog.String("serviceID", svc.ID), slog.String("storeID", storeID))

	return svc, nil
}

// UpdateService replaces every owner-editable field of a service.
func (srv *catalogService) UpdateService(ctx context.Context, callerID, serviceID string, input *usecase.ServiceInput) (*entity.Service, error) {
	svc, err := srv.requireServiceOwner(ctx, serviceID, callerID)
	if err != nil {
		return nil, err
	}

	applyServiceInput(svc, input)
	svc.UpdatedAt = time.Now().UTC()

	if err := srv.serviceRepo.Update(ctx, svc); err != nil {
		return nil, mapServiceError(err, "failed to update service")
	}

	return svc, nil
}

// DeleteService removes a service of a store owned by callerID.
func (srv *catalogService) DeleteService(ctx context.Context, callerID, serviceID string) error {
	if _, err := srv.requireServiceOwner(ctx, serviceID, callerID); err != nil {
		return err
	}

	if err := srv.serviceRepo.Delete(ctx, serviceID); err != nil {
		return mapServiceError(err, "failed to delete service")
	}

	srv.log(ctx).Info("Service deleted", slog.String("serviceID", serviceID))

	return nil
}

// requireServiceOwner resolves the service, then its store, then checks ownership.
func (srv *catalogService) requireServiceOwner(ctx context.Context, serviceID, callerID string) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, mapServiceError(err, "failed to find service")
	}

	if _, err := srv.requireStoreOwner(ctx, svc.StoreID, callerID); err != nil {
		return nil, err
	}

	return svc, nil
}

func applyServiceInput(svc *entity.Service, input *usecase.ServiceInput) {
	svc.Name = input.Name
	svc.Description = input.Description
	svc.Price = input.Price
	svc.Duration = input.Duration
	svc.Category = input.Category
	svc.Image = input.Image
}

func mapServiceError(err error, msg string) error {
	if errors.Is(err, repository.ErrServiceNotFound) {
		return domainerrors.ErrServiceNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}
