package service

import (
	"context"

	"food-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error
}

type MenuRepository interface {
	CreateMenu(ctx context.Context, menu *domain.Menu) error
	ListMenus(ctx context.Context, restaurantID uuid.UUID) ([]domain.Menu, error)
	GetMenu(ctx context.Context, restaurantID, menuID uuid.UUID) (*domain.Menu, error)
	UpdateMenu(ctx context.Context, menu *domain.Menu) error
	DeleteMenu(ctx context.Context, restaurantID, menuID uuid.UUID) error
	// AvailableMenus resolves menuIDs in one lookup, keeping only menus of
	// restaurantID that are currently available.
	AvailableMenus(ctx context.Context, restaurantID uuid.UUID, menuIDs []uuid.UUID) ([]domain.Menu, error)
}

type OrderRepository interface {
	// CreateOrder writes the order header and all items in one transaction.
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	// UpdateOrderStatus is a compare-and-set on the current status.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (bool, error)
	OwnerEmail(ctx context.Context, orderID uuid.UUID) (string, error)
}

type PaymentRepository interface {
	// CreatePayment locks the order row, re-checks it is unpaid and inserts the
	// PENDING payment in one transaction.
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	// SettlePayment moves the payment for sessionID from PENDING to status.
	// check runs against the locked row before anything is written.
	SettlePayment(ctx context.Context, sessionID string, status domain.PaymentStatus, check func(*domain.Payment) error) (*domain.Settlement, error)
}

type UserRepository interface {
	// CreateUser assigns the id and makes the first account ever created admin.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type TokenIssuer interface {
	Issue(userID uuid.UUID) (domain.AccessToken, error)
}

type Authorizer interface {
	Allow(identity domain.Identity, action domain.Action) bool
}

type PaymentProvider interface {
	CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error)
	ParseEvent(payload []byte, signature string) (*domain.PaymentEvent, error)
}

type Notifier interface {
	// Dispatch must return immediately; delivery happens in the background.
	Dispatch(confirmation domain.Confirmation)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type UserServiceInterface interface {
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
	Login(ctx context.Context, email, password string) (domain.AccessToken, error)
	Profile(ctx context.Context, identity domain.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, identity domain.Identity, update domain.ProfileUpdate) (*domain.User, error)
	ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error)
	GetUser(ctx context.Context, identity domain.Identity, id uuid.UUID) (*domain.User, error)
	DeleteUser(ctx context.Context, identity domain.Identity, id uuid.UUID) error
}

type CatalogServiceInterface interface {
	CreateRestaurant(ctx context.Context, identity domain.Identity, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, identity domain.Identity, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, identity domain.Identity, id uuid.UUID) error
	CreateMenu(ctx context.Context, identity domain.Identity, menu *domain.Menu) error
	ListMenus(ctx context.Context, restaurantID uuid.UUID) ([]domain.Menu, error)
	UpdateMenu(ctx context.Context, identity domain.Identity, menu *domain.Menu) error
	DeleteMenu(ctx context.Context, identity domain.Identity, restaurantID, menuID uuid.UUID) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, identity domain.Identity, restaurantID uuid.UUID, items []domain.PlaceOrderItem) (*domain.Order, error)
	GetOrder(ctx context.Context, identity domain.Identity, orderID uuid.UUID) (*domain.Order, error)
	ListMyOrders(ctx context.Context, identity domain.Identity) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, identity domain.Identity, orderID uuid.UUID, status string) (*domain.Order, error)
}

type PaymentServiceInterface interface {
	InitiatePayment(ctx context.Context, identity domain.Identity, orderID uuid.UUID) (*domain.Checkout, error)
	GetQRCode(ctx context.Context, identity domain.Identity, paymentID uuid.UUID) ([]byte, error)
}

type WebhookServiceInterface interface {
	HandleEvent(ctx context.Context, payload []byte, signature string) (WebhookResult, error)
}
