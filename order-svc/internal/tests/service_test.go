package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"food-ordering/logger"
	"food-ordering/order-svc/internal/auth"
	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/mocks"
	"food-ordering/order-svc/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	owner    = domain.Identity{UserID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Email: "owner@example.com"}
	stranger = domain.Identity{UserID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Email: "other@example.com"}
	admin    = domain.Identity{UserID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Privilege: domain.PrivilegeAdmin}
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCatalogService_CreateRestaurant(t *testing.T) {
	restaurants := mocks.NewRestaurantRepository(t)
	menus := mocks.NewMenuRepository(t)
	svc := service.NewCatalogService(restaurants, menus, auth.NewRolePolicy())
	ctx := context.Background()

	tests := []struct {
		name          string
		identity      domain.Identity
		input         *domain.Restaurant
		prepareMocks  func(rest *domain.Restaurant)
		expectedError error
	}{
		{
			name:     "success",
			identity: admin,
			input:    &domain.Restaurant{Name: "Spice Hub", Address: "MG Road", IsOpen: true},
			prepareMocks: func(rest *domain.Restaurant) {
				restaurants.On("CreateRestaurant", ctx, rest).Return(nil).Once()
			},
		},
		{
			name:          "not_admin",
			identity:      owner,
			input:         &domain.Restaurant{Name: "Spice Hub", Address: "MG Road"},
			prepareMocks:  func(*domain.Restaurant) {},
			expectedError: domain.ErrAccessDenied,
		},
		{
			name:          "empty_name",
			identity:      admin,
			input:         &domain.Restaurant{Name: " ", Address: "MG Road"},
			prepareMocks:  func(*domain.Restaurant) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:     "database_error",
			identity: admin,
			input:    &domain.Restaurant{Name: "Spice Hub", Address: "MG Road"},
			prepareMocks: func(rest *domain.Restaurant) {
				restaurants.On("CreateRestaurant", ctx, rest).Return(domain.ErrPersistence).Once()
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks(testCase.input)
			err := svc.CreateRestaurant(ctx, testCase.identity, testCase.input)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestCatalogService_CreateMenu(t *testing.T) {
	restaurants := mocks.NewRestaurantRepository(t)
	menus := mocks.NewMenuRepository(t)
	svc := service.NewCatalogService(restaurants, menus, auth.NewRolePolicy())
	ctx := context.Background()
	restaurantID := uuid.New()

	tests := []struct {
		name          string
		input         *domain.Menu
		prepareMocks  func(menu *domain.Menu)
		expectedError error
	}{
		{
			name:  "success",
			input: &domain.Menu{RestaurantID: restaurantID, Name: "Dosa", Price: price("80.00"), IsAvailable: true},
			prepareMocks: func(menu *domain.Menu) {
				restaurants.On("GetRestaurant", ctx, restaurantID).Return(&domain.Restaurant{ID: restaurantID}, nil).Once()
				menus.On("CreateMenu", ctx, menu).Return(nil).Once()
			},
		},
		{
			name:  "restaurant_missing",
			input: &domain.Menu{RestaurantID: restaurantID, Name: "Dosa", Price: price("80.00")},
			prepareMocks: func(*domain.Menu) {
				restaurants.On("GetRestaurant", ctx, restaurantID).Return(nil, domain.ErrRestaurantNotFound).Once()
			},
			expectedError: domain.ErrRestaurantNotFound,
		},
		{
			name:          "negative_price",
			input:         &domain.Menu{RestaurantID: restaurantID, Name: "Dosa", Price: price("-1")},
			prepareMocks:  func(*domain.Menu) {},
			expectedError: domain.ErrInvalidInput,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks(testCase.input)
			err := svc.CreateMenu(ctx, admin, testCase.input)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	restaurantID := uuid.New()
	menuA := domain.Menu{ID: uuid.New(), RestaurantID: restaurantID, Name: "Biryani", Price: price("100"), IsAvailable: true}
	menuB := domain.Menu{ID: uuid.New(), RestaurantID: restaurantID, Name: "Lassi", Price: price("50"), IsAvailable: true}
	ctx := context.Background()

	type repos struct {
		restaurants *mocks.RestaurantRepository
		menus       *mocks.MenuRepository
		orders      *mocks.OrderRepository
		events      *mocks.EventPublisher
	}

	tests := []struct {
		name          string
		caller        *domain.Identity
		items         []domain.PlaceOrderItem
		prepareMocks  func(r repos)
		expectedError error
		expectedTotal string
	}{
		{
			name: "two_items_total_from_catalog",
			items: []domain.PlaceOrderItem{
				{MenuID: menuA.ID, Quantity: 2},
				{MenuID: menuB.ID, Quantity: 1},
			},
			prepareMocks: func(r repos) {
				r.restaurants.On("GetRestaurant", ctx, restaurantID).Return(&domain.Restaurant{ID: restaurantID}, nil).Once()
				r.menus.On("AvailableMenus", ctx, restaurantID, []uuid.UUID{menuA.ID, menuB.ID}).
					Return([]domain.Menu{menuB, menuA}, nil).Once()
				r.orders.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				r.events.On("Publish", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderPlaced && e.Amount.Equal(price("250"))
				})).Return(nil).Once()
			},
			expectedTotal: "250",
		},
		{
			name:  "publish_failure_does_not_fail_order",
			items: []domain.PlaceOrderItem{{MenuID: menuA.ID, Quantity: 3}},
			prepareMocks: func(r repos) {
				r.restaurants.On("GetRestaurant", ctx, restaurantID).Return(&domain.Restaurant{ID: restaurantID}, nil).Once()
				r.menus.On("AvailableMenus", ctx, restaurantID, []uuid.UUID{menuA.ID}).Return([]domain.Menu{menuA}, nil).Once()
				r.orders.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				r.events.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
			expectedTotal: "300",
		},
		{
			name: "unavailable_menu",
			items: []domain.PlaceOrderItem{
				{MenuID: menuA.ID, Quantity: 1},
				{MenuID: menuB.ID, Quantity: 1},
			},
			prepareMocks: func(r repos) {
				r.restaurants.On("GetRestaurant", ctx, restaurantID).Return(&domain.Restaurant{ID: restaurantID}, nil).Once()
				r.menus.On("AvailableMenus", ctx, restaurantID, []uuid.UUID{menuA.ID, menuB.ID}).
					Return([]domain.Menu{menuA}, nil).Once()
			},
			expectedError: domain.ErrInvalidOrderItems,
		},
		{
			name: "duplicate_menu_id",
			items: []domain.PlaceOrderItem{
				{MenuID: menuA.ID, Quantity: 1},
				{MenuID: menuA.ID, Quantity: 2},
			},
			prepareMocks:  func(repos) {},
			expectedError: domain.ErrInvalidOrderItems,
		},
		{
			name:          "empty_items",
			items:         nil,
			prepareMocks:  func(repos) {},
			expectedError: domain.ErrInvalidOrderItems,
		},
		{
			name:          "zero_quantity",
			items:         []domain.PlaceOrderItem{{MenuID: menuA.ID, Quantity: 0}},
			prepareMocks:  func(repos) {},
			expectedError: domain.ErrInvalidQuantity,
		},
		{
			name:          "quantity_above_limit",
			items:         []domain.PlaceOrderItem{{MenuID: menuA.ID, Quantity: domain.MaxItemQuantity + 1}},
			prepareMocks:  func(repos) {},
			expectedError: domain.ErrInvalidQuantity,
		},
		{
			name:  "quantity_at_limit",
			items: []domain.PlaceOrderItem{{MenuID: menuB.ID, Quantity: domain.MaxItemQuantity}},
			prepareMocks: func(r repos) {
				r.restaurants.On("GetRestaurant", ctx, restaurantID).Return(&domain.Restaurant{ID: restaurantID}, nil).Once()
				r.menus.On("AvailableMenus", ctx, restaurantID, []uuid.UUID{menuB.ID}).Return([]domain.Menu{menuB}, nil).Once()
				r.orders.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				r.events.On("Publish", ctx, mock.Anything).Return(nil).Once()
			},
			expectedTotal: "50000",
		},
		{
			name:          "account_without_email",
			caller:        &domain.Identity{UserID: owner.UserID},
			items:         []domain.PlaceOrderItem{{MenuID: menuA.ID, Quantity: 1}},
			prepareMocks:  func(repos) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:  "restaurant_not_found",
			items: []domain.PlaceOrderItem{{MenuID: menuA.ID, Quantity: 1}},
			prepareMocks: func(r repos) {
				r.restaurants.On("GetRestaurant", ctx, restaurantID).Return(nil, domain.ErrRestaurantNotFound).Once()
			},
			expectedError: domain.ErrRestaurantNotFound,
		},
		{
			name:  "persistence_failure",
			items: []domain.PlaceOrderItem{{MenuID: menuA.ID, Quantity: 1}},
			prepareMocks: func(r repos) {
				r.restaurants.On("GetRestaurant", ctx, restaurantID).Return(&domain.Restaurant{ID: restaurantID}, nil).Once()
				r.menus.On("AvailableMenus", ctx, restaurantID, []uuid.UUID{menuA.ID}).Return([]domain.Menu{menuA}, nil).Once()
				r.orders.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).
					Return(fmt.Errorf("%w: insert order_items", domain.ErrPersistence)).Once()
			},
			expectedError: domain.ErrPersistence,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := repos{
				restaurants: mocks.NewRestaurantRepository(t),
				menus:       mocks.NewMenuRepository(t),
				orders:      mocks.NewOrderRepository(t),
				events:      mocks.NewEventPublisher(t),
			}
			testCase.prepareMocks(r)
			svc := service.NewOrderService(r.restaurants, r.menus, r.orders, auth.NewRolePolicy(), r.events, logger.Discard())

			caller := owner
			if testCase.caller != nil {
				caller = *testCase.caller
			}
			order, err := svc.PlaceOrder(ctx, caller, restaurantID, testCase.items)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderPlaced, order.Status)
			assert.Equal(t, owner.UserID, order.UserID)
			assert.True(t, order.TotalAmount.Equal(price(testCase.expectedTotal)), order.TotalAmount.String())
			assert.Len(t, order.Items, len(testCase.items))
		})
	}
}

func TestOrderService_PlaceOrder_FreezesPrices(t *testing.T) {
	restaurantID := uuid.New()
	menuA := domain.Menu{ID: uuid.New(), RestaurantID: restaurantID, Price: price("100"), IsAvailable: true}
	menuB := domain.Menu{ID: uuid.New(), RestaurantID: restaurantID, Price: price("50"), IsAvailable: true}
	catalog := []domain.Menu{menuA, menuB}
	ctx := context.Background()

	restaurants := mocks.NewRestaurantRepository(t)
	menus := mocks.NewMenuRepository(t)
	orders := mocks.NewOrderRepository(t)
	restaurants.On("GetRestaurant", ctx, restaurantID).Return(&domain.Restaurant{ID: restaurantID}, nil).Once()
	menus.On("AvailableMenus", ctx, restaurantID, mock.Anything).Return(catalog, nil).Once()
	orders.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

	svc := service.NewOrderService(restaurants, menus, orders, auth.NewRolePolicy(), nil, logger.Discard())
	order, err := svc.PlaceOrder(ctx, owner, restaurantID, []domain.PlaceOrderItem{
		{MenuID: menuA.ID, Quantity: 2},
		{MenuID: menuB.ID, Quantity: 1},
	})
	require.NoError(t, err)

	catalog[0].Price = price("999")
	catalog[1].Price = price("1")

	assert.True(t, order.Items[0].PriceAtOrder.Equal(price("100")))
	assert.True(t, order.Items[1].PriceAtOrder.Equal(price("50")))
	assert.True(t, order.TotalAmount.Equal(price("250")))
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	orderID := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name          string
		identity      domain.Identity
		repoErr       error
		expectedError error
	}{
		{name: "owner", identity: owner},
		{name: "admin", identity: admin},
		{name: "stranger", identity: stranger, expectedError: domain.ErrAccessDenied},
		{name: "missing", identity: owner, repoErr: domain.ErrOrderNotFound, expectedError: domain.ErrOrderNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			if testCase.repoErr != nil {
				orders.On("GetOrder", ctx, orderID).Return(nil, testCase.repoErr).Once()
			} else {
				orders.On("GetOrder", ctx, orderID).Return(&domain.Order{ID: orderID, UserID: owner.UserID}, nil).Once()
			}
			svc := service.NewOrderService(nil, nil, orders, auth.NewRolePolicy(), nil, logger.Discard())

			order, err := svc.GetOrder(ctx, testCase.identity, orderID)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, order.ID)
		})
	}
}

func TestOrderService_ListMyOrders(t *testing.T) {
	ctx := context.Background()
	orders := mocks.NewOrderRepository(t)
	expected := []domain.Order{{ID: uuid.New(), UserID: owner.UserID}}
	orders.On("ListUserOrders", ctx, owner.UserID).Return(expected, nil).Once()

	svc := service.NewOrderService(nil, nil, orders, auth.NewRolePolicy(), nil, logger.Discard())
	got, err := svc.ListMyOrders(ctx, owner)
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	orderID := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name          string
		identity      domain.Identity
		status        string
		prepareMocks  func(orders *mocks.OrderRepository)
		expectedError error
		expected      domain.OrderStatus
	}{
		{
			name:     "forward_move",
			identity: admin,
			status:   "preparing",
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", ctx, orderID).Return(&domain.Order{ID: orderID, Status: domain.OrderPaid}, nil).Once()
				orders.On("UpdateOrderStatus", ctx, orderID, domain.OrderPaid, domain.OrderPreparing).Return(true, nil).Once()
			},
			expected: domain.OrderPreparing,
		},
		{
			name:          "not_admin",
			identity:      owner,
			status:        "PAID",
			prepareMocks:  func(*mocks.OrderRepository) {},
			expectedError: domain.ErrAccessDenied,
		},
		{
			name:          "unknown_status",
			identity:      admin,
			status:        "SHIPPED",
			prepareMocks:  func(*mocks.OrderRepository) {},
			expectedError: domain.ErrInvalidStatus,
		},
		{
			name:     "order_missing",
			identity: admin,
			status:   "PAID",
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", ctx, orderID).Return(nil, domain.ErrOrderNotFound).Once()
			},
			expectedError: domain.ErrOrderNotFound,
		},
		{
			name:     "backwards_move",
			identity: admin,
			status:   "PLACED",
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", ctx, orderID).Return(&domain.Order{ID: orderID, Status: domain.OrderPaid}, nil).Once()
			},
			expectedError: domain.ErrInvalidStatusTransition,
		},
		{
			name:     "concurrent_change",
			identity: admin,
			status:   "CANCELLED",
			prepareMocks: func(orders *mocks.OrderRepository) {
				orders.On("GetOrder", ctx, orderID).Return(&domain.Order{ID: orderID, Status: domain.OrderPlaced}, nil).Once()
				orders.On("UpdateOrderStatus", ctx, orderID, domain.OrderPlaced, domain.OrderCancelled).Return(false, nil).Once()
			},
			expectedError: domain.ErrStatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			testCase.prepareMocks(orders)
			svc := service.NewOrderService(nil, nil, orders, auth.NewRolePolicy(), nil, logger.Discard())

			order, err := svc.UpdateStatus(ctx, testCase.identity, orderID, testCase.status)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, order.Status)
		})
	}
}

func paymentOptions() service.PaymentOptions {
	return service.PaymentOptions{
		Currency:      "INR",
		Timeout:       time.Second,
		SuccessURL:    "https://shop.example/success",
		CancelURL:     "https://shop.example/cancel",
		PublicBaseURL: "https://api.example",
	}
}

func TestPaymentService_InitiatePayment(t *testing.T) {
	orderID := uuid.New()
	ctx := context.Background()
	placed := &domain.Order{ID: orderID, UserID: owner.UserID, Status: domain.OrderPlaced, TotalAmount: price("250")}
	session := &domain.CheckoutSession{
		SessionID:   "cs_test_1",
		RedirectURL: "https://checkout.example/cs_test_1",
		RawResponse: []byte(`{"id":"cs_test_1"}`),
	}

	type deps struct {
		orders   *mocks.OrderRepository
		payments *mocks.PaymentRepository
		provider *mocks.PaymentProvider
		qr       *mocks.QRGenerator
	}

	tests := []struct {
		name          string
		identity      domain.Identity
		prepareMocks  func(d deps)
		expectedError error
	}{
		{
			name:     "success",
			identity: owner,
			prepareMocks: func(d deps) {
				d.orders.On("GetOrder", ctx, orderID).Return(placed, nil).Once()
				d.provider.On("CreateCheckout", mock.Anything, mock.MatchedBy(func(req domain.CheckoutRequest) bool {
					return req.Amount.Equal(price("250")) &&
						req.Currency == "inr" &&
						req.Metadata["order_id"] == orderID.String() &&
						req.Metadata["user_id"] == owner.UserID.String() &&
						req.SuccessURL == "https://shop.example/success"
				})).Return(session, nil).Once()
				d.qr.On("Generate", session.RedirectURL).Return([]byte("png"), nil).Once()
				d.payments.On("CreatePayment", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
					return p.Status == domain.PaymentPending &&
						p.ProviderSessionID == "cs_test_1" &&
						p.OrderID == orderID &&
						string(p.QRCode) == "png"
				})).Return(nil).Once()
			},
		},
		{
			name:     "not_owner",
			identity: stranger,
			prepareMocks: func(d deps) {
				d.orders.On("GetOrder", ctx, orderID).Return(placed, nil).Once()
			},
			expectedError: domain.ErrAccessDenied,
		},
		{
			name:     "admin_is_not_owner",
			identity: admin,
			prepareMocks: func(d deps) {
				d.orders.On("GetOrder", ctx, orderID).Return(placed, nil).Once()
			},
			expectedError: domain.ErrAccessDenied,
		},
		{
			name:     "already_paid",
			identity: owner,
			prepareMocks: func(d deps) {
				paid := *placed
				paid.Status = domain.OrderPaid
				d.orders.On("GetOrder", ctx, orderID).Return(&paid, nil).Once()
			},
			expectedError: domain.ErrAlreadyPaid,
		},
		{
			name:     "cancelled",
			identity: owner,
			prepareMocks: func(d deps) {
				cancelled := *placed
				cancelled.Status = domain.OrderCancelled
				d.orders.On("GetOrder", ctx, orderID).Return(&cancelled, nil).Once()
			},
			expectedError: domain.ErrOrderNotPayable,
		},
		{
			name:     "zero_total",
			identity: owner,
			prepareMocks: func(d deps) {
				free := *placed
				free.TotalAmount = decimal.Zero
				d.orders.On("GetOrder", ctx, orderID).Return(&free, nil).Once()
			},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:     "provider_error",
			identity: owner,
			prepareMocks: func(d deps) {
				d.orders.On("GetOrder", ctx, orderID).Return(placed, nil).Once()
				d.provider.On("CreateCheckout", mock.Anything, mock.Anything).Return(nil, errors.New("card network down")).Once()
			},
			expectedError: domain.ErrPaymentProvider,
		},
		{
			name:     "paid_while_checking_out",
			identity: owner,
			prepareMocks: func(d deps) {
				d.orders.On("GetOrder", ctx, orderID).Return(placed, nil).Once()
				d.provider.On("CreateCheckout", mock.Anything, mock.Anything).Return(session, nil).Once()
				d.qr.On("Generate", session.RedirectURL).Return(nil, errors.New("too long")).Once()
				d.payments.On("CreatePayment", ctx, mock.Anything).Return(domain.ErrAlreadyPaid).Once()
			},
			expectedError: domain.ErrAlreadyPaid,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := deps{
				orders:   mocks.NewOrderRepository(t),
				payments: mocks.NewPaymentRepository(t),
				provider: mocks.NewPaymentProvider(t),
				qr:       mocks.NewQRGenerator(t),
			}
			testCase.prepareMocks(d)
			svc := service.NewPaymentService(d.orders, d.payments, d.provider, d.qr, paymentOptions(), logger.Discard())

			checkout, err := svc.InitiatePayment(ctx, testCase.identity, orderID)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, checkout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cs_test_1", checkout.SessionID)
			assert.Equal(t, session.RedirectURL, checkout.RedirectURL)
			assert.Equal(t, domain.PaymentPending, checkout.Status)
			assert.Equal(t, "inr", checkout.Currency)
			assert.Equal(t, "https://api.example/api/payments/"+checkout.PaymentID.String()+"/qrcode", checkout.QRCodeURL)
		})
	}
}

func TestPaymentService_InitiatePayment_ProviderTimeout(t *testing.T) {
	orderID := uuid.New()
	ctx := context.Background()
	orders := mocks.NewOrderRepository(t)
	payments := mocks.NewPaymentRepository(t)
	provider := mocks.NewPaymentProvider(t)

	orders.On("GetOrder", ctx, orderID).
		Return(&domain.Order{ID: orderID, UserID: owner.UserID, Status: domain.OrderPlaced, TotalAmount: price("10")}, nil).Once()
	provider.On("CreateCheckout", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, _ domain.CheckoutRequest) (*domain.CheckoutSession, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	opts := paymentOptions()
	opts.Timeout = 20 * time.Millisecond
	svc := service.NewPaymentService(orders, payments, provider, nil, opts, logger.Discard())

	_, err := svc.InitiatePayment(ctx, owner, orderID)
	assert.ErrorIs(t, err, domain.ErrPaymentProvider)
	assert.Equal(t, domain.KindExternalService, domain.KindOf(err))
}

func TestPaymentService_GetQRCode(t *testing.T) {
	paymentID := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name          string
		identity      domain.Identity
		payment       *domain.Payment
		prepareQR     func(qr *mocks.QRGenerator)
		expected      []byte
		expectedError error
	}{
		{
			name:      "stored_code",
			identity:  owner,
			payment:   &domain.Payment{ID: paymentID, UserID: owner.UserID, QRCode: []byte("stored")},
			prepareQR: func(*mocks.QRGenerator) {},
			expected:  []byte("stored"),
		},
		{
			name:     "regenerated_code",
			identity: owner,
			payment:  &domain.Payment{ID: paymentID, UserID: owner.UserID, RedirectURL: "https://checkout.example/x"},
			prepareQR: func(qr *mocks.QRGenerator) {
				qr.On("Generate", "https://checkout.example/x").Return([]byte("fresh"), nil).Once()
			},
			expected: []byte("fresh"),
		},
		{
			name:          "not_owner",
			identity:      stranger,
			payment:       &domain.Payment{ID: paymentID, UserID: owner.UserID, QRCode: []byte("stored")},
			prepareQR:     func(*mocks.QRGenerator) {},
			expectedError: domain.ErrAccessDenied,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			payments := mocks.NewPaymentRepository(t)
			qr := mocks.NewQRGenerator(t)
			payments.On("GetPayment", ctx, paymentID).Return(testCase.payment, nil).Once()
			testCase.prepareQR(qr)
			svc := service.NewPaymentService(nil, payments, nil, qr, paymentOptions(), logger.Discard())

			code, err := svc.GetQRCode(ctx, testCase.identity, paymentID)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, code)
		})
	}
}

func TestDefaultQRGenerator_Generate(t *testing.T) {
	code, err := service.DefaultQRGenerator{}.Generate("https://checkout.example/cs_test_1")
	require.NoError(t, err)
	assert.NotEmpty(t, code)
	assert.Equal(t, []byte("\x89PNG"), code[:4])
}

type settleFunc = func(context.Context, string, domain.PaymentStatus, func(*domain.Payment) error) (*domain.Settlement, error)

// settleAgainst runs the correlation check on a copy of payment and, when it
// passes, settles it.
func settleAgainst(payment domain.Payment, restaurantID uuid.UUID) settleFunc {
	return func(_ context.Context, _ string, status domain.PaymentStatus, check func(*domain.Payment) error) (*domain.Settlement, error) {
		if err := check(&payment); err != nil {
			return nil, err
		}
		payment.Status = status
		return &domain.Settlement{Payment: payment, RestaurantID: restaurantID, OrderPaid: status == domain.PaymentSuccess}, nil
	}
}

func TestWebhookService_HandleEvent(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	restaurantID := uuid.New()
	pending := domain.Payment{
		ID:                uuid.New(),
		OrderID:           orderID,
		UserID:            owner.UserID,
		ProviderSessionID: "cs_test_1",
		Amount:            price("250"),
		Currency:          "inr",
		Status:            domain.PaymentPending,
	}
	paidEvent := &domain.PaymentEvent{
		ID: "evt_1", Type: "checkout.session.completed", Outcome: domain.OutcomeSucceeded,
		SessionID: "cs_test_1", OrderID: orderID.String(), AmountMinor: 25000, Currency: "inr",
	}
	payload := []byte(`{"id":"evt_1"}`)

	type deps struct {
		payments *mocks.PaymentRepository
		orders   *mocks.OrderRepository
		provider *mocks.PaymentProvider
		notifier *mocks.Notifier
		events   *mocks.EventPublisher
	}

	tests := []struct {
		name          string
		prepareMocks  func(d deps)
		expected      string
		expectedError error
	}{
		{
			name: "success_settles_and_notifies",
			prepareMocks: func(d deps) {
				d.provider.On("ParseEvent", payload, "sig").Return(paidEvent, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentSuccess, mock.Anything).
					Return(settleAgainst(pending, restaurantID)).Once()
				d.orders.On("OwnerEmail", ctx, orderID).Return("owner@example.com", nil).Once()
				d.notifier.On("Dispatch", domain.Confirmation{
					PaymentID: pending.ID, OrderID: orderID, ToAddress: "owner@example.com",
					Amount: pending.Amount, Currency: "inr",
				}).Return().Once()
				d.events.On("Publish", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderPaid && e.RestaurantID == restaurantID && e.OrderID == orderID
				})).Return(nil).Once()
			},
			expected: service.ResultProcessed,
		},
		{
			name: "success_on_cancelled_order_asks_for_refund",
			prepareMocks: func(d deps) {
				d.provider.On("ParseEvent", payload, "sig").Return(paidEvent, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentSuccess, mock.Anything).
					Return(func(_ context.Context, _ string, status domain.PaymentStatus, check func(*domain.Payment) error) (*domain.Settlement, error) {
						p := pending
						if err := check(&p); err != nil {
							return nil, err
						}
						p.Status = status
						return &domain.Settlement{Payment: p, RestaurantID: restaurantID, OrderPaid: false}, nil
					}).Once()
				d.orders.On("OwnerEmail", ctx, orderID).Return("owner@example.com", nil).Once()
				d.notifier.On("Dispatch", domain.Confirmation{
					PaymentID: pending.ID, OrderID: orderID, ToAddress: "owner@example.com",
					Amount: pending.Amount, Currency: "inr", NeedsRefund: true,
				}).Return().Once()
			},
			expected: service.ResultProcessed,
		},
		{
			name: "failure_event_leaves_order_alone",
			prepareMocks: func(d deps) {
				failed := *paidEvent
				failed.Type = "checkout.session.expired"
				failed.Outcome = domain.OutcomeFailed
				d.provider.On("ParseEvent", payload, "sig").Return(&failed, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentFailed, mock.Anything).
					Return(func(_ context.Context, _ string, status domain.PaymentStatus, check func(*domain.Payment) error) (*domain.Settlement, error) {
						p := pending
						if err := check(&p); err != nil {
							return nil, err
						}
						p.Status = status
						return &domain.Settlement{Payment: p, RestaurantID: restaurantID}, nil
					}).Once()
				d.events.On("Publish", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventPaymentFailed
				})).Return(nil).Once()
			},
			expected: service.ResultProcessed,
		},
		{
			name: "invalid_signature",
			prepareMocks: func(d deps) {
				d.provider.On("ParseEvent", payload, "sig").Return(nil, domain.ErrInvalidSignature).Once()
			},
			expectedError: domain.ErrInvalidSignature,
		},
		{
			name: "irrelevant_event",
			prepareMocks: func(d deps) {
				d.provider.On("ParseEvent", payload, "sig").
					Return(&domain.PaymentEvent{ID: "evt_2", Type: "customer.created"}, nil).Once()
			},
			expected: service.ResultIgnored,
		},
		{
			name: "unknown_session",
			prepareMocks: func(d deps) {
				d.provider.On("ParseEvent", payload, "sig").Return(paidEvent, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentSuccess, mock.Anything).
					Return(nil, domain.ErrPaymentNotFound).Once()
			},
			expected: service.ResultAlreadyProcessed,
		},
		{
			name: "already_settled",
			prepareMocks: func(d deps) {
				d.provider.On("ParseEvent", payload, "sig").Return(paidEvent, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentSuccess, mock.Anything).
					Return(nil, domain.ErrPaymentSettled).Once()
			},
			expected: service.ResultAlreadyProcessed,
		},
		{
			name: "amount_mismatch",
			prepareMocks: func(d deps) {
				tampered := *paidEvent
				tampered.AmountMinor = 100
				d.provider.On("ParseEvent", payload, "sig").Return(&tampered, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentSuccess, mock.Anything).
					Return(settleAgainst(pending, restaurantID)).Once()
			},
			expected: service.ResultMismatch,
		},
		{
			name: "order_mismatch",
			prepareMocks: func(d deps) {
				tampered := *paidEvent
				tampered.OrderID = uuid.NewString()
				d.provider.On("ParseEvent", payload, "sig").Return(&tampered, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentSuccess, mock.Anything).
					Return(settleAgainst(pending, restaurantID)).Once()
			},
			expected: service.ResultMismatch,
		},
		{
			name: "persistence_failure_is_returned",
			prepareMocks: func(d deps) {
				d.provider.On("ParseEvent", payload, "sig").Return(paidEvent, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentSuccess, mock.Anything).
					Return(nil, fmt.Errorf("%w: connection reset", domain.ErrPersistence)).Once()
			},
			expectedError: domain.ErrPersistence,
		},
		{
			name: "recipient_lookup_failure_still_acknowledged",
			prepareMocks: func(d deps) {
				d.provider.On("ParseEvent", payload, "sig").Return(paidEvent, nil).Once()
				d.payments.On("SettlePayment", ctx, "cs_test_1", domain.PaymentSuccess, mock.Anything).
					Return(settleAgainst(pending, restaurantID)).Once()
				d.orders.On("OwnerEmail", ctx, orderID).Return("", domain.ErrPersistence).Once()
				d.events.On("Publish", ctx, mock.Anything).Return(nil).Once()
			},
			expected: service.ResultProcessed,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := deps{
				payments: mocks.NewPaymentRepository(t),
				orders:   mocks.NewOrderRepository(t),
				provider: mocks.NewPaymentProvider(t),
				notifier: mocks.NewNotifier(t),
				events:   mocks.NewEventPublisher(t),
			}
			testCase.prepareMocks(d)
			svc := service.NewWebhookService(d.payments, d.orders, d.provider, d.notifier, d.events, logger.Discard())

			result, err := svc.HandleEvent(ctx, payload, "sig")
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result.Status)
		})
	}
}

// paymentStore settles payments under a mutex, the way a row lock
// serialises concurrent transactions.
type paymentStore struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment
	paid     map[uuid.UUID]int
}

func (s *paymentStore) CreatePayment(context.Context, *domain.Payment) error {
	return errors.New("not used")
}

func (s *paymentStore) GetPayment(context.Context, uuid.UUID) (*domain.Payment, error) {
	return nil, errors.New("not used")
}

func (s *paymentStore) SettlePayment(_ context.Context, sessionID string, status domain.PaymentStatus, check func(*domain.Payment) error) (*domain.Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[sessionID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	if payment.Status.IsTerminal() {
		return nil, domain.ErrPaymentSettled
	}
	if err := check(payment); err != nil {
		return nil, err
	}
	payment.Status = status
	if status == domain.PaymentSuccess {
		s.paid[payment.OrderID]++
	}
	return &domain.Settlement{Payment: *payment, OrderPaid: status == domain.PaymentSuccess}, nil
}

func TestWebhookService_DuplicateDelivery(t *testing.T) {
	orderID := uuid.New()
	event := &domain.PaymentEvent{
		ID: "evt_1", Type: "checkout.session.completed", Outcome: domain.OutcomeSucceeded,
		SessionID: "cs_dup", OrderID: orderID.String(), AmountMinor: 25000,
	}

	for _, concurrent := range []bool{false, true} {
		t.Run(fmt.Sprintf("concurrent=%v", concurrent), func(t *testing.T) {
			store := &paymentStore{
				payments: map[string]*domain.Payment{
					"cs_dup": {ID: uuid.New(), OrderID: orderID, ProviderSessionID: "cs_dup", Amount: price("250"), Status: domain.PaymentPending},
				},
				paid: map[uuid.UUID]int{},
			}
			provider := mocks.NewPaymentProvider(t)
			orders := mocks.NewOrderRepository(t)
			notifier := mocks.NewNotifier(t)
			events := mocks.NewEventPublisher(t)

			provider.On("ParseEvent", mock.Anything, "sig").Return(event, nil).Twice()
			orders.On("OwnerEmail", mock.Anything, orderID).Return("owner@example.com", nil).Once()
			notifier.On("Dispatch", mock.Anything).Return().Once()
			events.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

			svc := service.NewWebhookService(store, orders, provider, notifier, events, logger.Discard())

			results := make([]string, 2)
			deliver := func(i int) {
				result, err := svc.HandleEvent(context.Background(), []byte("{}"), "sig")
				assert.NoError(t, err)
				results[i] = result.Status
			}
			if concurrent {
				var wg sync.WaitGroup
				for i := range results {
					wg.Add(1)
					go func(i int) {
						defer wg.Done()
						deliver(i)
					}(i)
				}
				wg.Wait()
			} else {
				deliver(0)
				deliver(1)
			}

			assert.ElementsMatch(t, []string{service.ResultProcessed, service.ResultAlreadyProcessed}, results)
			assert.Equal(t, 1, store.paid[orderID])
			assert.Equal(t, domain.PaymentSuccess, store.payments["cs_dup"].Status)
		})
	}
}

func TestWebhookService_CapturedChargeOnUnpayableOrderIsLoggedAsError(t *testing.T) {
	orderID := uuid.New()
	payment := domain.Payment{
		ID: uuid.New(), OrderID: orderID, ProviderSessionID: "cs_late",
		Amount: price("250"), Currency: "inr", Status: domain.PaymentPending,
	}
	event := &domain.PaymentEvent{
		ID: "evt_late", Type: "checkout.session.completed", Outcome: domain.OutcomeSucceeded,
		SessionID: "cs_late", OrderID: orderID.String(), AmountMinor: 25000, Currency: "inr",
	}

	payments := mocks.NewPaymentRepository(t)
	orders := mocks.NewOrderRepository(t)
	provider := mocks.NewPaymentProvider(t)
	notifier := mocks.NewNotifier(t)
	events := mocks.NewEventPublisher(t)

	provider.On("ParseEvent", mock.Anything, "sig").Return(event, nil).Once()
	payments.On("SettlePayment", mock.Anything, "cs_late", domain.PaymentSuccess, mock.Anything).
		Return(&domain.Settlement{Payment: payment}, nil).Once()
	orders.On("OwnerEmail", mock.Anything, orderID).Return("owner@example.com", nil).Once()
	notifier.On("Dispatch", mock.MatchedBy(func(c domain.Confirmation) bool { return c.NeedsRefund })).Return().Once()

	var logs bytes.Buffer
	svc := service.NewWebhookService(payments, orders, provider, notifier, events, logger.NewWithWriter("order-svc", &logs))

	result, err := svc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)
	assert.Equal(t, service.ResultProcessed, result.Status)
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), "payment captured for an order that is no longer payable")
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
