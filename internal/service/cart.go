package service

import (
	"context"

	"github.com/t7spotter/restaurantAPI/internal/model"
	"github.com/t7spotter/restaurantAPI/internal/validation"
)

// AddCartLine добавляет блюдо в корзину пользователя.
// Повторное добавление того же блюда сливается в одну строку:
// количество растёт, цена наращивается по зафиксированной unit_price.
func (s *Service) AddCartLine(ctx context.Context, userID, menuItemID int64, quantity int32) (*model.CartLine, error) {
	if !validation.ValidQuantity(quantity) {
		return nil, ErrInvalidQuantity
	}
	return s.repo.UpsertCartLine(ctx, userID, menuItemID, quantity)
}

// GetCart возвращает строки корзины пользователя вместе с агрегатами.
func (s *Service) GetCart(ctx context.Context, userID int64) ([]model.CartLine, model.CartSummary, error) {
	lines, err := s.repo.GetCartLines(ctx, userID)
	if err != nil {
		return nil, model.CartSummary{}, err
	}

	var summary model.CartSummary
	for _, l := range lines {
		summary.TotalPriceCents += l.PriceCents
		summary.ItemCount++
		summary.TotalQuantity += l.Quantity
	}

	return lines, summary, nil
}

// AllCarts возвращает менеджеру корзины всех пользователей с промежуточными итогами.
func (s *Service) AllCarts(ctx context.Context) ([]model.UserCart, error) {
	return s.repo.ListAllCarts(ctx)
}

// ClearCart очищает корзину пользователя. Повторная очистка — не ошибка.
func (s *Service) ClearCart(ctx context.Context, userID int64) error {
	return s.repo.ClearCart(ctx, userID)
}
