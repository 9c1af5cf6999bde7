// Package service реализует бизнес-правила ресторанного API.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// ErrInvalidRate возвращается, если оценка вне диапазона от 1 до 10.
var (
	ErrInvalidRate = errors.New("rate must be between 1 and 10")
	// ErrInvalidQuantity возвращается при неположительном количестве в корзине.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidPrice возвращается при неположительной цене блюда.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidTitle возвращается при пустом названии.
	ErrInvalidTitle = errors.New("title must not be empty")
	// ErrInvalidSlug возвращается при некорректном slug категории.
	ErrInvalidSlug = errors.New("invalid slug")
	// ErrNotPurchased возвращается при оценке блюда, которое пользователь не покупал.
	ErrNotPurchased = errors.New("menu item was not purchased by this user")
	// ErrUnknownGroup возвращается для группы вне списка manager/delivery/customer.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrUnknownRatingTarget возвращается для неизвестного вида оцениваемой сущности.
	ErrUnknownRatingTarget = errors.New("unknown rating target kind")
	// ErrInvalidRange возвращается, если начало периода отчёта позже конца.
	ErrInvalidRange = errors.New("range start is after range end")
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error

	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsersInGroup(ctx context.Context, group model.Group) ([]model.User, error)
	AddUserToGroup(ctx context.Context, userID int64, group model.Group) (bool, error)
	RemoveUserFromGroup(ctx context.Context, userID int64, group model.Group) error
	SetReadyToWork(ctx context.Context, userID int64, ready bool) error

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

	UpsertCartLine(ctx context.Context, userID, menuItemID int64, quantity int32) (*model.CartLine, error)
	GetCartLines(ctx context.Context, userID int64) ([]model.CartLine, error)
	ListAllCarts(ctx context.Context) ([]model.UserCart, error)
	ClearCart(ctx context.Context, userID int64) error

	CreateOrderFromCart(ctx context.Context, userID int64) (*model.Order, []model.OrderItem, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	ListAllOrders(ctx context.Context) ([]model.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListOrdersByCrew(ctx context.Context, crewID int64) ([]model.Order, error)
	MarkDelivered(ctx context.Context, orderID, crewID int64) (*model.Order, error)
	SetDeliveryCrew(ctx context.Context, orderID, crewID int64) (*model.Order, error)

	HasPurchased(ctx context.Context, userID, menuItemID int64) (bool, error)
	CreateRating(ctx context.Context, rating model.Rating) (*model.Rating, error)
	RatingSummary(ctx context.Context, target model.RatingTarget) (model.RatingSummary, error)

	SalesBetween(ctx context.Context, from, to time.Time) (int64, int64, error)
}

// Service содержит бизнес-логику ресторанного API.
type Service struct {
	repo Repository
}

// NewService создаёт новый сервис с указанным репозиторием.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}
