package tests

import (
	"context"
	"sort"
	"sync"
	"time"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
)

// memoryRepo is an in-process stand-in for the Postgres repository. One
// mutex plays the part of the row locks taken by the real transactions.
type memoryRepo struct {
	mu          sync.Mutex
	restaurants map[uuid.UUID]domain.Restaurant
	menus       map[uuid.UUID]domain.Menu
	orders      map[uuid.UUID]domain.Order
	users       map[uuid.UUID]domain.User
	payments    map[uuid.UUID]domain.Payment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		restaurants: map[uuid.UUID]domain.Restaurant{},
		menus:       map[uuid.UUID]domain.Menu{},
		orders:      map[uuid.UUID]domain.Order{},
		users:       map[uuid.UUID]domain.User{},
		payments:    map[uuid.UUID]domain.Payment{},
	}
}

func (m *memoryRepo) CreateUser(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	user.Role = domain.RoleUser
	if len(m.users) == 0 {
		user.Role = domain.RoleAdmin
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *memoryRepo) GetUser(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (m *memoryRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memoryRepo) ListUsers(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		list = append(list, user)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (m *memoryRepo) UpdateUser(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	current.FirstName = user.FirstName
	current.LastName = user.LastName
	current.Phone = user.Phone
	current.Address = user.Address
	m.users[user.ID] = current
	return nil
}

func (m *memoryRepo) DeleteUser(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	for _, order := range m.orders {
		if order.UserID == id {
			return domain.ErrReferencedEntity
		}
	}
	delete(m.users, id)
	return nil
}

func (m *memoryRepo) CreateRestaurant(_ context.Context, rest *domain.Restaurant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rest.ID = uuid.New()
	rest.CreatedAt = time.Now()
	m.restaurants[rest.ID] = *rest
	return nil
}

func (m *memoryRepo) ListRestaurants(context.Context) ([]domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]domain.Restaurant, 0, len(m.restaurants))
	for _, rest := range m.restaurants {
		list = append(list, rest)
	}
	return list, nil
}

func (m *memoryRepo) GetRestaurant(_ context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rest, ok := m.restaurants[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return &rest, nil
}

func (m *memoryRepo) UpdateRestaurant(_ context.Context, rest *domain.Restaurant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.restaurants[rest.ID]; !ok {
		return domain.ErrRestaurantNotFound
	}
	m.restaurants[rest.ID] = *rest
	return nil
}

func (m *memoryRepo) DeleteRestaurant(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.restaurants[id]; !ok {
		return domain.ErrRestaurantNotFound
	}
	for _, order := range m.orders {
		if order.RestaurantID == id {
			return domain.ErrReferencedEntity
		}
	}
	delete(m.restaurants, id)
	for menuID, menu := range m.menus {
		if menu.RestaurantID == id {
			delete(m.menus, menuID)
		}
	}
	return nil
}

func (m *memoryRepo) CreateMenu(_ context.Context, menu *domain.Menu) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	menu.ID = uuid.New()
	menu.CreatedAt = time.Now()
	m.menus[menu.ID] = *menu
	return nil
}

func (m *memoryRepo) ListMenus(_ context.Context, restaurantID uuid.UUID) ([]domain.Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []domain.Menu
	for _, menu := range m.menus {
		if menu.RestaurantID == restaurantID {
			list = append(list, menu)
		}
	}
	return list, nil
}

func (m *memoryRepo) GetMenu(_ context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	menu, ok := m.menus[menuID]
	if !ok || menu.RestaurantID != restaurantID {
		return nil, domain.ErrMenuNotFound
	}
	return &menu, nil
}

func (m *memoryRepo) UpdateMenu(_ context.Context, menu *domain.Menu) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.menus[menu.ID]
	if !ok || current.RestaurantID != menu.RestaurantID {
		return domain.ErrMenuNotFound
	}
	menu.CreatedAt = current.CreatedAt
	m.menus[menu.ID] = *menu
	return nil
}

func (m *memoryRepo) DeleteMenu(_ context.Context, restaurantID, menuID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	menu, ok := m.menus[menuID]
	if !ok || menu.RestaurantID != restaurantID {
		return domain.ErrMenuNotFound
	}
	delete(m.menus, menuID)
	return nil
}

func (m *memoryRepo) AvailableMenus(_ context.Context, restaurantID uuid.UUID, menuIDs []uuid.UUID) ([]domain.Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found []domain.Menu
	for _, id := range menuIDs {
		menu, ok := m.menus[id]
		if ok && menu.RestaurantID == restaurantID && menu.IsAvailable {
			found = append(found, menu)
		}
	}
	return found, nil
}

func (m *memoryRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.CreatedAt = time.Now()
	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	m.orders[order.ID] = stored
	return nil
}

func (m *memoryRepo) GetOrder(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order, nil
}

func (m *memoryRepo) ListUserOrders(_ context.Context, userID uuid.UUID) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []domain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			list = append(list, order)
		}
	}
	return list, nil
}

func (m *memoryRepo) UpdateOrderStatus(_ context.Context, id uuid.UUID, from, to domain.OrderStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	m.orders[id] = order
	return true, nil
}

func (m *memoryRepo) OwnerEmail(_ context.Context, orderID uuid.UUID) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return "", domain.ErrOrderNotFound
	}
	user, ok := m.users[order.UserID]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return user.Email, nil
}

func (m *memoryRepo) CreatePayment(_ context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[payment.OrderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.Status.IsPaid() {
		return domain.ErrAlreadyPaid
	}
	if order.Status == domain.OrderCancelled {
		return domain.ErrOrderNotPayable
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt
	m.payments[payment.ID] = *payment
	return nil
}

func (m *memoryRepo) GetPayment(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return &payment, nil
}

func (m *memoryRepo) SettlePayment(_ context.Context, sessionID string, status domain.PaymentStatus, check func(*domain.Payment) error) (*domain.Settlement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var payment domain.Payment
	found := false
	for _, p := range m.payments {
		if p.ProviderSessionID == sessionID {
			payment, found = p, true
			break
		}
	}
	if !found {
		return nil, domain.ErrPaymentNotFound
	}
	if payment.Status.IsTerminal() {
		return nil, domain.ErrPaymentSettled
	}
	if err := check(&payment); err != nil {
		return nil, err
	}

	payment.Status = status
	payment.UpdatedAt = time.Now()
	m.payments[payment.ID] = payment

	order := m.orders[payment.OrderID]
	settlement := &domain.Settlement{Payment: payment, RestaurantID: order.RestaurantID}
	if status == domain.PaymentSuccess && order.Status == domain.OrderPlaced {
		order.Status = domain.OrderPaid
		m.orders[order.ID] = order
		settlement.OrderPaid = true
	}
	return settlement, nil
}
