package service

import (
	"context"
	"strings"

	"github.com/t7spotter/restaurantAPI/internal/model"
	"github.com/t7spotter/restaurantAPI/internal/validation"
)

// ListCategories возвращает все категории меню.
func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

// GetCategory возвращает категорию по идентификатору.
func (s *Service) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func validateCategory(c model.Category) error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrInvalidTitle
	}
	if !validation.ValidSlug(c.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

// CreateCategory создаёт категорию меню.
func (s *Service) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	if err := validateCategory(c); err != nil {
		return nil, err
	}
	return s.repo.CreateCategory(ctx, c)
}

// UpdateCategory обновляет категорию меню.
func (s *Service) UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	if err := validateCategory(c); err != nil {
		return nil, err
	}
	return s.repo.UpdateCategory(ctx, c)
}

// DeleteCategory удаляет категорию. Категория с блюдами защищена от удаления.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}

// ListMenuItems возвращает позиции меню с учётом фильтров запроса.
func (s *Service) ListMenuItems(ctx context.Context, f model.MenuItemFilter) ([]model.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, f)
}

// GetMenuItem возвращает позицию меню по идентификатору.
func (s *Service) GetMenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func validateMenuItem(m model.MenuItem) error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}
	if !validation.ValidPriceCents(m.PriceCents) {
		return ErrInvalidPrice
	}
	return nil
}

// CreateMenuItem создаёт позицию меню.
func (s *Service) CreateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	if err := validateMenuItem(m); err != nil {
		return nil, err
	}
	return s.repo.CreateMenuItem(ctx, m)
}

// UpdateMenuItem обновляет позицию меню целиком.
func (s *Service) UpdateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	if err := validateMenuItem(m); err != nil {
		return nil, err
	}
	return s.repo.UpdateMenuItem(ctx, m)
}

// DeleteMenuItem удаляет позицию меню.
func (s *Service) DeleteMenuItem(ctx context.Context, id int64) error {
	return s.repo.DeleteMenuItem(ctx, id)
}

// SetMenuItemFeatured переключает доступность блюда и возвращает обновлённую позицию.
func (s *Service) SetMenuItemFeatured(ctx context.Context, id int64, featured bool) (*model.MenuItem, error) {
	return s.repo.SetMenuItemFeatured(ctx, id, featured)
}

// SetMenuItemPrice устанавливает новую цену блюда.
// Снимки цен в строках корзин и заказах не пересчитываются.
func (s *Service) SetMenuItemPrice(ctx context.Context, id int64, priceCents int64) (*model.MenuItem, error) {
	if !validation.ValidPriceCents(priceCents) {
		return nil, ErrInvalidPrice
	}
	return s.repo.SetMenuItemPrice(ctx, id, priceCents)
}
