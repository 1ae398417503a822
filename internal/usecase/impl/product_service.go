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

type productService struct {
	storeGuard

	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		storeGuard:  storeGuard{storeRepo: params.StoreRepo},
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStoreProducts lists the products of a store.
func (srv *productService) ListStoreProducts(ctx context.Context, storeID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByStore(ctx, storeID, generalListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store products")
	}

	return products, nil
}

// GetProduct returns a product or ProductNotFound.
func (srv *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	return srv.findProduct(ctx, productID)
}

// CreateProduct adds a product to a store owned by callerID.
func (srv *productService) CreateProduct(ctx context.Context, callerID, storeID string, input *usecase.ProductInput) (*entity.Product, error) {
	if _, err := srv.requireStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      images,
		Stock:       input.Stock,
		Category:    input.Category,
		StoreID:     storeID,
		LikedBy:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID), slog.String("storeID", storeID))

	return product, nil
}

// UpdateProduct applies the supplied fields only. updated_at moves only when something was supplied.
func (srv *productService) UpdateProduct(ctx context.Context, callerID, productID string, update *usecase.ProductUpdate) (*entity.Product, error) {
	product, err := srv.requireProductOwner(ctx, productID, callerID)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return product, nil
	}

	applyProductUpdate(product, update)
	product.UpdatedAt = time.Now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, mapProductError(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product of a store owned by callerID.
func (srv *productService) DeleteProduct(ctx context.Context, callerID, productID string) error {
	if _, err := srv.requireProductOwner(ctx, productID, callerID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return mapProductError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", productID))

	return nil
}

// LikeProduct adds userID to the liker set. The repository update is conditional on the user
// still being absent, so a concurrent duplicate like fails instead of double counting.
func (srv *productService) LikeProduct(ctx context.Context, userID, productID string) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.IsLikedBy(userID) {
		return nil, domainerrors.ErrAlreadyLiked.WrapMessage("product " + productID)
	}

	liked, err := srv.productRepo.AddLike(ctx, productID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeConflict) {
			return nil, domainerrors.ErrAlreadyLiked.WrapMessage("product " + productID + " liked concurrently")
		}

		return nil, mapProductError(err, "failed to like product")
	}

	return liked, nil
}

// UnlikeProduct removes userID from the liker set; likes cannot drop below zero.
func (srv *productService) UnlikeProduct(ctx context.Context, userID, productID string) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if !product.IsLikedBy(userID) {
		return nil, domainerrors.ErrNotLiked.WrapMessage("product " + productID)
	}

	unliked, err := srv.productRepo.RemoveLike(ctx, productID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeConflict) {
			return nil, domainerrors.ErrNotLiked.WrapMessage("product " + productID + " unliked concurrently")
		}

		return nil, mapProductError(err, "failed to unlike product")
	}

	return unliked, nil
}

func (srv *productService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapProductError(err, "failed to find product")
	}

	return product, nil
}

// requireProductOwner resolves the product, then its store, then checks ownership.
func (srv *productService) requireProductOwner(ctx context.Context, productID, callerID string) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.requireStoreOwner(ctx, product.StoreID, callerID); err != nil {
		return nil, err
	}

	return product, nil
}

func applyProductUpdate(product *entity.Product, update *usecase.ProductUpdate) {
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Images != nil {
		product.Images = *update.Images
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
}

func mapProductError(err error, msg string) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}
