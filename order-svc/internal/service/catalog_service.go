package service

import (
	"context"
	"fmt"
	"strings"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
)

type CatalogService struct {
	restaurants RestaurantRepository
	menus       MenuRepository
	authz       Authorizer
}

func NewCatalogService(restaurants RestaurantRepository, menus MenuRepository, authz Authorizer) *CatalogService {
	return &CatalogService{restaurants: restaurants, menus: menus, authz: authz}
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, identity domain.Identity, rest *domain.Restaurant) error {
	if !s.authz.Allow(identity, domain.ActionManageCatalog) {
		return domain.ErrAccessDenied
	}
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	return s.restaurants.CreateRestaurant(ctx, rest)
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurants.ListRestaurants(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	return s.restaurants.GetRestaurant(ctx, id)
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, identity domain.Identity, rest *domain.Restaurant) error {
	if !s.authz.Allow(identity, domain.ActionManageCatalog) {
		return domain.ErrAccessDenied
	}
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	return s.restaurants.UpdateRestaurant(ctx, rest)
}

// DeleteRestaurant removes the restaurant together with its menus.
func (s *CatalogService) DeleteRestaurant(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	if !s.authz.Allow(identity, domain.ActionManageCatalog) {
		return domain.ErrAccessDenied
	}
	return s.restaurants.DeleteRestaurant(ctx, id)
}

func (s *CatalogService) CreateMenu(ctx context.Context, identity domain.Identity, menu *domain.Menu) error {
	if !s.authz.Allow(identity, domain.ActionManageCatalog) {
		return domain.ErrAccessDenied
	}
	if err := validateMenu(menu); err != nil {
		return err
	}
	if _, err := s.restaurants.GetRestaurant(ctx, menu.RestaurantID); err != nil {
		return err
	}
	return s.menus.CreateMenu(ctx, menu)
}

func (s *CatalogService) ListMenus(ctx context.Context, restaurantID uuid.UUID) ([]domain.Menu, error) {
	return s.menus.ListMenus(ctx, restaurantID)
}

// UpdateMenu changes the live menu only; prices already copied into order
// items are never touched.
func (s *CatalogService) UpdateMenu(ctx context.Context, identity domain.Identity, menu *domain.Menu) error {
	if !s.authz.Allow(identity, domain.ActionManageCatalog) {
		return domain.ErrAccessDenied
	}
	if err := validateMenu(menu); err != nil {
		return err
	}
	return s.menus.UpdateMenu(ctx, menu)
}

func (s *CatalogService) DeleteMenu(ctx context.Context, identity domain.Identity, restaurantID, menuID uuid.UUID) error {
	if !s.authz.Allow(identity, domain.ActionManageCatalog) {
		return domain.ErrAccessDenied
	}
	return s.menus.DeleteMenu(ctx, restaurantID, menuID)
}

func validateRestaurant(rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return fmt.Errorf("%w: restaurant name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(rest.Address) == "" {
		return fmt.Errorf("%w: restaurant address is required", domain.ErrInvalidInput)
	}
	return nil
}

func validateMenu(menu *domain.Menu) error {
	if strings.TrimSpace(menu.Name) == "" {
		return fmt.Errorf("%w: menu name is required", domain.ErrInvalidInput)
	}
	if menu.Price.IsNegative() {
		return fmt.Errorf("%w: menu price must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
