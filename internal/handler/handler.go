// Package handler содержит HTTP-обработчики ресторанного API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/t7spotter/restaurantAPI/internal/authz"
	"github.com/t7spotter/restaurantAPI/internal/middleware"
	"github.com/t7spotter/restaurantAPI/internal/model"
	"github.com/t7spotter/restaurantAPI/internal/repository"
	"github.com/t7spotter/restaurantAPI/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, c model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListMenuItems(ctx context.Context, f model.MenuItemFilter) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
	SetMenuItemFeatured(ctx context.Context, id int64, featured bool) (*model.MenuItem, error)
	SetMenuItemPrice(ctx context.Context, id int64, priceCents int64) (*model.MenuItem, error)

	AddCartLine(ctx context.Context, userID, menuItemID int64, quantity int32) (*model.CartLine, error)
	GetCart(ctx context.Context, userID int64) ([]model.CartLine, model.CartSummary, error)
	AllCarts(ctx context.Context) ([]model.UserCart, error)
	ClearCart(ctx context.Context, userID int64) error

	Checkout(ctx context.Context, userID int64) (*model.Order, []model.OrderItem, error)
	ListOrders(ctx context.Context, principal *model.User) ([]model.Order, error)
	GetOrder(ctx context.Context, principal *model.User, orderID int64) (*model.Order, []model.OrderItem, error)
	MarkDelivered(ctx context.Context, crewID, orderID int64) (*model.Order, error)
	ReassignDelivery(ctx context.Context, orderID, crewID int64) (*model.Order, error)
	SetReadyToWork(ctx context.Context, userID int64, ready bool) error

	SubmitRating(ctx context.Context, userID int64, target model.RatingTarget, rate int16) (*model.Rating, error)
	RatingSummary(ctx context.Context, target model.RatingTarget) (model.RatingSummary, error)

	ListGroupUsers(ctx context.Context, group model.Group) ([]model.User, error)
	AddUserToGroup(ctx context.Context, username string, group model.Group) (*model.User, error)
	RemoveUserFromGroup(ctx context.Context, userID int64, group model.Group) error

	DailySales(ctx context.Context, date time.Time) (*model.SalesReport, error)
	RangeSales(ctx context.Context, from, to time.Time) (*model.SalesReport, error)
}

// Handler реализует HTTP-обработчики ресторанного API.
type Handler struct {
	service        Service
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{
		service:        s,
		logger:         logger,
		authMiddleware: auth,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

// respondError переводит доменные ошибки в HTTP-статусы.
// Ошибки хранилища и прочие непредвиденные сбои не покидают сервис как есть.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var statusCode int

	switch {
	case errors.Is(err, repository.ErrMenuItemNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrNotInGroup):
		statusCode = http.StatusNotFound
	case errors.Is(err, authz.ErrForbidden),
		errors.Is(err, repository.ErrNotAssigned),
		errors.Is(err, service.ErrNotPurchased):
		statusCode = http.StatusForbidden
	case errors.Is(err, repository.ErrNoDeliveryAvailable),
		errors.Is(err, repository.ErrAlreadyDelivered),
		errors.Is(err, repository.ErrAlreadyRated),
		errors.Is(err, repository.ErrCrewNotReady),
		errors.Is(err, repository.ErrCategoryHasItems):
		statusCode = http.StatusConflict
	case errors.Is(err, service.ErrInvalidRate):
		statusCode = http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrItemUnavailable),
		errors.Is(err, repository.ErrEmptyCart),
		errors.Is(err, repository.ErrNotDeliveryCrew),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidTitle),
		errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrUnknownGroup),
		errors.Is(err, service.ErrUnknownRatingTarget):
		statusCode = http.StatusBadRequest
	default:
		h.logger.Error("internal error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, statusCode, messageResponse{Message: err.Error()})
}

func (h *Handler) principal(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return nil, false
	}
	return principal, true
}
