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

type orderService struct {
	storeGuard

	orderRepo     repository.OrderRepository
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	StoreRepo     repository.StoreRepository
	OrderRepo     repository.OrderRepository
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		storeGuard:    storeGuard{storeRepo: params.StoreRepo},
		orderRepo:     params.OrderRepo,
		notifications: params.Notifications,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a pending order at an existing store. The total is computed from the items.
func (srv *orderService) CreateOrder(ctx context.Context, buyerID string, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order has no items")
	}

	if _, err := srv.findStore(ctx, input.StoreID); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Name:      item.Name,
		})
	}

	now := time.Now().UTC()
	order := &entity.Order{
		ID:        uuid.NewString(),
		StoreID:   input.StoreID,
		UserID:    buyerID,
		Items:     items,
		Total:     entity.OrderTotal(items),
		Status:    entity.OrderStatusPending,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID),
		slog.String("storeID", order.StoreID),
		slog.Float64("total", order.Total),
	)

	return order, nil
}

// MyOrders lists the buyer's orders, newest first.
func (srv *orderService) MyOrders(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, buyerID, ownerListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// StoreOrders lists the orders of a store owned by callerID, newest first.
func (srv *orderService) StoreOrders(ctx context.Context, callerID, storeID string) ([]*entity.Order, error) {
	if _, err := srv.requireStoreOwner(ctx, storeID, callerID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByStore(ctx, storeID, generalListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order to any status. Only the owner of the order's store may do it.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, callerID, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage(status.String())
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, "failed to find order")
	}

	if _, err := srv.requireStoreOwner(ctx, order.StoreID, callerID); err != nil {
		return nil, err
	}

	updatedAt := time.Now().UTC()
	if err := srv.orderRepo.UpdateStatus(ctx, orderID, status, updatedAt); err != nil {
		return nil, mapOrderError(err, "failed to update order status")
	}

	previous := order.Status
	order.Status = status
	order.UpdatedAt = updatedAt

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", orderID),
		slog.String("from", previous.String()),
		slog.String("to", status.String()),
	)

	srv.notifyBuyer(ctx, order)

	return order, nil
}

// notifyBuyer is best-effort; a push failure never fails the status change.
func (srv *orderService) notifyBuyer(ctx context.Context, order *entity.Order) {
	push := &usecase.PushMessage{
		Event: usecase.PushEventOrderStatus,
		Title: "Order update",
		Body:  "Your order is now " + order.Status.String(),
		Data: map[string]string{
			"order_id": order.ID,
			"store_id": order.StoreID,
			"status":   order.Status.String(),
		},
	}

	if _, err := srv.notifications.NotifyUser(ctx, order.UserID, push); err != nil {
		srv.log(ctx).Warn("Failed to push order status notification",
			slog.String("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

func mapOrderError(err error, msg string) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}
