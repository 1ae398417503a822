package impl

import (
	"context"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/domain/repository"
	mockRepo "boral/internal/mocks/repository"
	mockUsecase "boral/internal/mocks/usecase"
	"boral/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service       usecase.OrderUsecase
	storeRepo     *mockRepo.MockStoreRepository
	orderRepo     *mockRepo.MockOrderRepository
	notifications *mockUsecase.MockNotificationUsecase
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	svc := NewOrderService(OrderServiceParams{
		StoreRepo:     storeRepo,
		OrderRepo:     orderRepo,
		Notifications: notifications,
		Logger:        newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:       svc,
		storeRepo:     storeRepo,
		orderRepo:     orderRepo,
		notifications: notifications,
	}
}

func TestOrderService_CreateOrder_ComputesTotal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
			return o.UserID == "buyer" && o.Status == entity.OrderStatusPending && len(o.Items) == 2
		})).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, "buyer", &usecase.CreateOrderInput{
		StoreID: "s1",
		Items: []usecase.OrderItemInput{
			{ProductID: ptr("p1"), Name: "Rug", Quantity: 2, Price: 10},
			{ServiceID: ptr("sv1"), Name: "Delivery", Quantity: 1, Price: 5.5},
		},
	})

	require.NoError(t, err)
	assert.InDelta(t, 25.5, order.Total, 1e-9)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.CreateOrder(context.Background(), "buyer", &usecase.CreateOrderInput{StoreID: "s1"})

		requireAppError(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown store", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		fx.storeRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.CreateOrder(ctx, "buyer", &usecase.CreateOrderInput{
			StoreID: "ghost",
			Items:   []usecase.OrderItemInput{{Name: "Rug", Quantity: 1, Price: 1}},
		})

		requireAppError(t, err, domainerrors.ErrStoreNotFound)
		fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOrderService_StoreOrders_Guard(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)

	_, err := fx.service.StoreOrders(ctx, "buyer", "s1")

	requireAppError(t, err, domainerrors.ErrNotStoreOwner)
	fx.orderRepo.AssertNotCalled(t, "ListByStore", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	newOrder := func() *entity.Order {
		return &entity.Order{ID: "o1", StoreID: "s1", UserID: "buyer", Status: entity.OrderStatusPending}
	}

	t.Run("owner confirms and buyer is notified", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		fx.orderRepo.EXPECT().FindByID(ctx, "o1").Return(newOrder(), nil)
		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)
		fx.orderRepo.EXPECT().UpdateStatus(ctx, "o1", entity.OrderStatusConfirmed, mock.AnythingOfType("time.Time")).Return(nil)
		fx.notifications.EXPECT().
			NotifyUser(ctx, "buyer", mock.MatchedBy(func(m *usecase.PushMessage) bool {
				return m.Event == usecase.PushEventOrderStatus && m.Data["status"] == "confirmed"
			})).
			Return(&usecase.PushResult{Sent: 1}, nil)

		order, err := fx.service.UpdateOrderStatus(ctx, "owner", "o1", entity.OrderStatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	})

	t.Run("push failure does not fail the update", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		fx.orderRepo.EXPECT().FindByID(ctx, "o1").Return(newOrder(), nil)
		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)
		fx.orderRepo.EXPECT().UpdateStatus(ctx, "o1", entity.OrderStatusCancelled, mock.AnythingOfType("time.Time")).Return(nil)
		fx.notifications.EXPECT().NotifyUser(ctx, "buyer", mock.Anything).Return(nil, errors.New("fcm unavailable"))

		order, err := fx.service.UpdateOrderStatus(ctx, "owner", "o1", entity.OrderStatusCancelled)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	})

	t.Run("invalid status is rejected before lookup", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateOrderStatus(context.Background(), "owner", "o1", entity.OrderStatus("shipped"))

		requireAppError(t, err, domainerrors.ErrInvalidOrderStatus)
		fx.orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		fx.orderRepo.EXPECT().FindByID(ctx, "o1").Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateOrderStatus(ctx, "owner", "o1", entity.OrderStatusCompleted)

		requireAppError(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("buyer cannot change status", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		fx.orderRepo.EXPECT().FindByID(ctx, "o1").Return(newOrder(), nil)
		fx.storeRepo.EXPECT().FindByID(ctx, "s1").Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, "buyer", "o1", entity.OrderStatusCompleted)

		requireAppError(t, err, domainerrors.ErrNotStoreOwner)
		fx.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
