package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxWebhookBody bounds the provider payload read into memory.
const maxWebhookBody = 64 << 10

const signatureHeader = "Stripe-Signature"

type Authenticator interface {
	Authenticate(r *http.Request) (domain.Identity, error)
}

type Handler struct {
	Users    service.UserServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Payments service.PaymentServiceInterface
	Webhooks service.WebhookServiceInterface
	Auth     Authenticator
	Logger   *slog.Logger
}

func NewHandler(users service.UserServiceInterface, catalog service.CatalogServiceInterface,
	orders service.OrderServiceInterface, payments service.PaymentServiceInterface,
	webhooks service.WebhookServiceInterface, auth Authenticator, logger *slog.Logger) *Handler {
	return &Handler{
		Users:    users,
		Catalog:  catalog,
		Orders:   orders,
		Payments: payments,
		Webhooks: webhooks,
		Auth:     auth,
		Logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/users/profile", h.authenticated(h.getProfile)).Methods("GET")
	r.HandleFunc("/api/users/profile", h.authenticated(h.updateProfile)).Methods("PUT")
	r.HandleFunc("/api/users", h.authenticated(h.listUsers)).Methods("GET")
	r.HandleFunc("/api/users/{id}", h.authenticated(h.getUser)).Methods("GET")
	r.HandleFunc("/api/users/{id}", h.authenticated(h.deleteUser)).Methods("DELETE")

	r.HandleFunc("/api/restaurants", h.authenticated(h.createRestaurant)).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.authenticated(h.updateRestaurant)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.authenticated(h.deleteRestaurant)).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{id}/menus", h.authenticated(h.createMenu)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menus", h.getMenus).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menus/{menuId}", h.authenticated(h.updateMenu)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/menus/{menuId}", h.authenticated(h.deleteMenu)).Methods("DELETE")

	r.HandleFunc("/api/orders", h.authenticated(h.placeOrder)).Methods("POST")
	r.HandleFunc("/api/orders", h.authenticated(h.getMyOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.authenticated(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.authenticated(h.updateOrderStatus)).Methods("PATCH", "PUT")
	r.HandleFunc("/api/orders/{id}/payments", h.authenticated(h.initiatePayment)).Methods("POST")

	r.HandleFunc("/api/payments/{id}/qrcode", h.authenticated(h.getPaymentQRCode)).Methods("GET")
	r.HandleFunc("/api/webhooks/stripe", h.stripeWebhook).Methods("POST")
}

type identityHandlerFunc func(w http.ResponseWriter, r *http.Request, identity domain.Identity)

func (h *Handler) authenticated(next identityHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.Auth.Authenticate(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next(w, r, identity)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	var rest domain.Restaurant
	if err := decodeBody(r, &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.CreateRestaurant(r.Context(), identity, &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var rest domain.Restaurant
	if err := decodeBody(r, &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	rest.ID = id
	if err := h.Catalog.UpdateRestaurant(r.Context(), identity, &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.DeleteRestaurant(r.Context(), identity, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var menu domain.Menu
	if err := decodeBody(r, &menu); err != nil {
		h.writeError(w, r, err)
		return
	}
	menu.RestaurantID = restaurantID
	if err := h.Catalog.CreateMenu(r.Context(), identity, &menu); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, menu)
}

func (h *Handler) getMenus(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	menus, err := h.Catalog.ListMenus(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *Handler) updateMenu(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	menuID, err := pathID(r, "menuId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var menu domain.Menu
	if err := decodeBody(r, &menu); err != nil {
		h.writeError(w, r, err)
		return
	}
	menu.ID = menuID
	menu.RestaurantID = restaurantID
	if err := h.Catalog.UpdateMenu(r.Context(), identity, &menu); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) deleteMenu(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	restaurantID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	menuID, err := pathID(r, "menuId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.DeleteMenu(r.Context(), identity, restaurantID, menuID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type placeOrderRequest struct {
	RestaurantID uuid.UUID          `json:"restaurant_id"`
	Items        []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	MenuID   uuid.UUID   `json:"menu_id"`
	Quantity json.Number `json:"quantity"`
}

// items converts the request lines, rejecting quantities that are not whole
// numbers or do not fit an int. Range checks are left to the order service.
func (req placeOrderRequest) items() ([]domain.PlaceOrderItem, error) {
	items := make([]domain.PlaceOrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		quantity, err := strconv.Atoi(line.Quantity.String())
		if err != nil {
			return nil, domain.ErrInvalidQuantity
		}
		items = append(items, domain.PlaceOrderItem{MenuID: line.MenuID, Quantity: quantity})
	}
	return items, nil
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	var req placeOrderRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	items, err := req.items()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	order, err := h.Orders.PlaceOrder(r.Context(), identity, req.RestaurantID, items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getMyOrders(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	orders, err := h.Orders.ListMyOrders(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	orderID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Orders.GetOrder(r.Context(), identity, orderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	orderID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), identity, orderID, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) initiatePayment(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	orderID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	checkout, err := h.Payments.InitiatePayment(r.Context(), identity, orderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, checkout)
}

func (h *Handler) getPaymentQRCode(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	paymentID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	qrCode, err := h.Payments.GetQRCode(r.Context(), identity, paymentID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

// stripeWebhook hands the raw body to the reconciler; the signature covers
// the exact bytes, so the payload must not be decoded here.
func (h *Handler) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err))
		return
	}
	result, err := h.Webhooks.HandleEvent(r.Context(), payload, r.Header.Get(signatureHeader))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "internal server error"
	}
	http.Error(w, message, status)
}

func statusFor(err error) int {
	if errors.Is(err, domain.ErrUnauthenticated) {
		return http.StatusUnauthorized
	}
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindAccessDenied:
		return http.StatusForbidden
	case domain.KindInvalidInput, domain.KindSecurityViolation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a uuid", domain.ErrInvalidInput, name)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
