// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"

	"github.com/pkg/errors"
)

// storeGuard resolves stores and enforces ownership before any mutation.
// A missing store is always reported before a foreign one.
type storeGuard struct {
	storeRepo repository.StoreRepository
}

// findStore loads a store, mapping absence to StoreNotFound.
func (g storeGuard) findStore(ctx context.Context, storeID string) (*entity.Store, error) {
	store, err := g.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("store " + storeID + " not found")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// requireStoreOwner loads the store and fails with NotStoreOwner unless callerID owns it.
func (g storeGuard) requireStoreOwner(ctx context.Context, storeID, callerID string) (*entity.Store, error) {
	store, err := g.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if !store.IsOwnedBy(callerID) {
		return nil, domainerrors.ErrNotStoreOwner.WrapMessage("caller does not own store " + storeID)
	}

	return store, nil
}
