package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	restaurants RestaurantRepository
	menus       MenuRepository
	orders      OrderRepository
	authz       Authorizer
	events      EventPublisher
	logger      *slog.Logger
}

func NewOrderService(restaurants RestaurantRepository, menus MenuRepository, orders OrderRepository,
	authz Authorizer, events EventPublisher, logger *slog.Logger) *OrderService {
	return &OrderService{
		restaurants: restaurants,
		menus:       menus,
		orders:      orders,
		authz:       authz,
		events:      events,
		logger:      logger,
	}
}

// PlaceOrder validates the request against the catalog and stores the order
// with its items in one transaction. Prices come from the catalog only.
func (s *OrderService) PlaceOrder(ctx context.Context, identity domain.Identity, restaurantID uuid.UUID, items []domain.PlaceOrderItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidOrderItems
	}
	// The confirmation email is addressed to the account's stored email.
	if strings.TrimSpace(identity.Email) == "" {
		return nil, fmt.Errorf("%w: account has no email address", domain.ErrInvalidInput)
	}

	menuIDs := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if item.Quantity <= 0 || item.Quantity > domain.MaxItemQuantity {
			return nil, domain.ErrInvalidQuantity
		}
		if _, dup := seen[item.MenuID]; dup {
			return nil, domain.ErrInvalidOrderItems
		}
		seen[item.MenuID] = struct{}{}
		menuIDs = append(menuIDs, item.MenuID)
	}

	if _, err := s.restaurants.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	menus, err := s.menus.AvailableMenus(ctx, restaurantID, menuIDs)
	if err != nil {
		return nil, err
	}
	if len(menus) != len(menuIDs) {
		return nil, domain.ErrInvalidOrderItems
	}

	order := priceOrder(identity.UserID, restaurantID, items, menus)
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		UserID:       order.UserID,
		Amount:       order.TotalAmount,
	})
	return order, nil
}

func priceOrder(userID, restaurantID uuid.UUID, items []domain.PlaceOrderItem, menus []domain.Menu) *domain.Order {
	prices := make(map[uuid.UUID]decimal.Decimal, len(menus))
	for _, menu := range menus {
		prices[menu.ID] = menu.Price
	}

	order := &domain.Order{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Status:       domain.OrderPlaced,
		TotalAmount:  decimal.Zero,
		Items:        make([]domain.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		price := prices[item.MenuID]
		order.Items = append(order.Items, domain.OrderItem{
			ID:           uuid.New(),
			OrderID:      order.ID,
			MenuID:       item.MenuID,
			Quantity:     item.Quantity,
			PriceAtOrder: price,
		})
		order.TotalAmount = order.TotalAmount.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return order
}

func (s *OrderService) GetOrder(ctx context.Context, identity domain.Identity, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != identity.UserID && !s.authz.Allow(identity, domain.ActionViewAnyOrder) {
		return nil, domain.ErrAccessDenied
	}
	return order, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, identity domain.Identity) ([]domain.Order, error) {
	return s.orders.ListUserOrders(ctx, identity.UserID)
}

// UpdateStatus moves an order forward through its lifecycle. The write is a
// compare-and-set on the status read here, so a concurrent change is
// reported as a conflict instead of being overwritten.
func (s *OrderService) UpdateStatus(ctx context.Context, identity domain.Identity, orderID uuid.UUID, status string) (*domain.Order, error) {
	if !s.authz.Allow(identity, domain.ActionManageOrders) {
		return nil, domain.ErrAccessDenied
	}
	next, err := domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidStatusTransition
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, orderID, order.Status, next)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrStatusConflict
	}

	s.logger.Info("order status updated",
		"order_id", orderID, "from", order.Status, "to", next, "by", identity.UserID)
	order.Status = next
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	publishEvent(ctx, s.events, s.logger, event)
}

// publishEvent stamps and sends an event. Publishing never fails the caller.
func publishEvent(ctx context.Context, events EventPublisher, logger *slog.Logger, event domain.OrderEvent) {
	if events == nil {
		return
	}
	event.EventID = uuid.New()
	event.Timestamp = time.Now().UTC()
	if err := events.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish order event",
			"type", event.Type, "order_id", event.OrderID, "error", err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
