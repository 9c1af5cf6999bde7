package service

import (
	"context"

	"github.com/t7spotter/restaurantAPI/internal/authz"
	"github.com/t7spotter/restaurantAPI/internal/model"
)

// Checkout оформляет заказ из корзины пользователя.
// Заказ, его позиции и очистка корзины фиксируются одной транзакцией.
func (s *Service) Checkout(ctx context.Context, userID int64) (*model.Order, []model.OrderItem, error) {
	return s.repo.CreateOrderFromCart(ctx, userID)
}

// ListOrders возвращает заказы, видимые принципалу:
// менеджеру — все (новые сначала), курьеру — назначенные ему,
// покупателю — собственные по возрастанию даты.
func (s *Service) ListOrders(ctx context.Context, principal *model.User) ([]model.Order, error) {
	roles := principal.Roles()
	switch {
	case authz.IsManager(roles):
		return s.repo.ListAllOrders(ctx)
	case roles.Delivery:
		return s.repo.ListOrdersByCrew(ctx, principal.ID)
	default:
		return s.repo.ListOrdersByUser(ctx, principal.ID)
	}
}

// GetOrder возвращает заказ с позициями, если принципал вправе его видеть:
// менеджер — любой заказ, курьер — назначенный ему, покупатель — свой.
func (s *Service) GetOrder(ctx context.Context, principal *model.User, orderID int64) (*model.Order, []model.OrderItem, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	roles := principal.Roles()
	switch {
	case authz.IsManager(roles):
	case roles.Delivery:
		if order.DeliveryCrewID == nil || *order.DeliveryCrewID != principal.ID {
			return nil, nil, authz.ErrForbidden
		}
	default:
		if order.UserID != principal.ID {
			return nil, nil, authz.ErrForbidden
		}
	}

	items, err := s.repo.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

// MarkDelivered отмечает заказ доставленным от имени назначенного курьера.
func (s *Service) MarkDelivered(ctx context.Context, crewID, orderID int64) (*model.Order, error) {
	return s.repo.MarkDelivered(ctx, orderID, crewID)
}

// ReassignDelivery назначает заказу нового курьера, статус заказа не меняется.
func (s *Service) ReassignDelivery(ctx context.Context, orderID, crewID int64) (*model.Order, error) {
	return s.repo.SetDeliveryCrew(ctx, orderID, crewID)
}

// SetReadyToWork переключает готовность курьера принимать заказы.
func (s *Service) SetReadyToWork(ctx context.Context, userID int64, ready bool) error {
	return s.repo.SetReadyToWork(ctx, userID, ready)
}
