package service

import (
	"context"
	"time"

	"food-ordering/sales-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

type SalesService struct {
	store StoreInterface
	now   func() time.Time
}

// NewSalesService reads figures from store. A nil clock means time.Now.
func NewSalesService(store StoreInterface, clock func() time.Time) *SalesService {
	if clock == nil {
		clock = time.Now
	}
	return &SalesService{store: store, now: clock}
}

func (s *SalesService) Today(ctx context.Context, limit int) ([]domain.RestaurantSales, error) {
	if limit <= 0 || limit > maxTopLimit {
		limit = defaultTopLimit
	}
	return s.store.TopRestaurants(ctx, s.today(), limit)
}

func (s *SalesService) ForRestaurant(ctx context.Context, restaurantID uuid.UUID, date string) (*domain.RestaurantSales, error) {
	day := s.today()
	if date != "" {
		parsed, err := time.Parse(domain.DayLayout, date)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		day = parsed.Format(domain.DayLayout)
	}
	return s.store.RestaurantSales(ctx, restaurantID, day)
}

func (s *SalesService) today() string {
	return s.now().UTC().Format(domain.DayLayout)
}

var _ SalesServiceInterface = (*SalesService)(nil)
