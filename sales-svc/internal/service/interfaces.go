package service

import (
	"context"

	"food-ordering/sales-svc/internal/domain"
	"food-ordering/sales-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type StoreInterface interface {
	MarkSeen(ctx context.Context, eventID uuid.UUID) (bool, error)
	Forget(ctx context.Context, eventID uuid.UUID) error
	RecordPlaced(ctx context.Context, restaurantID uuid.UUID, day string) error
	RecordPaid(ctx context.Context, restaurantID uuid.UUID, day string, amount decimal.Decimal) error
	RecordFailed(ctx context.Context, restaurantID uuid.UUID, day string) error
	RestaurantSales(ctx context.Context, restaurantID uuid.UUID, day string) (*domain.RestaurantSales, error)
	TopRestaurants(ctx context.Context, day string, limit int) ([]domain.RestaurantSales, error)
}

// MessageReader is a consumer group reader whose offsets move only when
// CommitMessages is called.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.OrderEvent) error
}

type SalesServiceInterface interface {
	Today(ctx context.Context, limit int) ([]domain.RestaurantSales, error)
	ForRestaurant(ctx context.Context, restaurantID uuid.UUID, date string) (*domain.RestaurantSales, error)
}

var _ StoreInterface = (*storage.Store)(nil)
var _ MessageReader = (*kafka.Reader)(nil)
