package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// ListCategories возвращает все категории меню.
func (r *PostgresRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, slug, title FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Title); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return categories, nil
}

// GetCategory возвращает категорию по идентификатору.
func (r *PostgresRepository) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx,
		`SELECT id, slug, title FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Slug, &c.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// CreateCategory создаёт категорию меню.
func (r *PostgresRepository) CreateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (slug, title) VALUES ($1, $2) RETURNING id`,
		c.Slug, c.Title,
	).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &c, nil
}

// UpdateCategory обновляет slug и название категории.
func (r *PostgresRepository) UpdateCategory(ctx context.Context, c model.Category) (*model.Category, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE categories SET slug = $2, title = $3 WHERE id = $1`,
		c.ID, c.Slug, c.Title,
	)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, ErrCategoryNotFound
	}
	return &c, nil
}

// DeleteCategory удаляет категорию. Категория с блюдами защищена внешним ключом.
func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryHasItems
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// ListMenuItems возвращает позиции меню с учётом фильтров.
// Сортировка по умолчанию: категория, затем доступные блюда первыми.
func (r *PostgresRepository) ListMenuItems(ctx context.Context, f model.MenuItemFilter) ([]model.MenuItem, error) {
	query := `SELECT m.id, m.title, m.price_cents, m.featured, m.category_id
		 FROM menu_items m
		 JOIN categories c ON c.id = m.category_id`

	var conds []string
	var args []any

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("m.title ILIKE $%d", len(args)))
	}
	if len(f.Categories) > 0 {
		// Несколько категорий объединяются через OR.
		var ors []string
		for _, cat := range f.Categories {
			args = append(args, "%"+cat+"%")
			ors = append(ors, fmt.Sprintf("c.title ILIKE $%d", len(args)))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	if f.FromPriceCents != nil {
		args = append(args, *f.FromPriceCents)
		conds = append(conds, fmt.Sprintf("m.price_cents >= $%d", len(args)))
	}
	if f.ToPriceCents != nil {
		args = append(args, *f.ToPriceCents)
		conds = append(conds, fmt.Sprintf("m.price_cents <= $%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		conds = append(conds, fmt.Sprintf("m.featured = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY m.category_id, m.featured DESC, m.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Title, &m.PriceCents, &m.Featured, &m.CategoryID); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

// GetMenuItem возвращает позицию меню по идентификатору.
func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	var m model.MenuItem
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, price_cents, featured, category_id FROM menu_items WHERE id = $1`, id,
	).Scan(&m.ID, &m.Title, &m.PriceCents, &m.Featured, &m.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &m, nil
}

// CreateMenuItem создаёт позицию меню.
func (r *PostgresRepository) CreateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO menu_items (title, price_cents, featured, category_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		m.Title, m.PriceCents, m.Featured, m.CategoryID,
	).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return &m, nil
}

// UpdateMenuItem обновляет все изменяемые поля позиции меню.
func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, m model.MenuItem) (*model.MenuItem, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE menu_items SET title = $2, price_cents = $3, featured = $4, category_id = $5 WHERE id = $1`,
		m.ID, m.Title, m.PriceCents, m.Featured, m.CategoryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, ErrMenuItemNotFound
	}
	return &m, nil
}

// DeleteMenuItem удаляет позицию меню.
func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// SetMenuItemFeatured переключает доступность блюда и возвращает обновлённую позицию.
func (r *PostgresRepository) SetMenuItemFeatured(ctx context.Context, id int64, featured bool) (*model.MenuItem, error) {
	var m model.MenuItem
	err := r.pool.QueryRow(ctx,
		`UPDATE menu_items SET featured = $2 WHERE id = $1
		 RETURNING id, title, price_cents, featured, category_id`,
		id, featured,
	).Scan(&m.ID, &m.Title, &m.PriceCents, &m.Featured, &m.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("set featured: %w", err)
	}
	return &m, nil
}

// SetMenuItemPrice устанавливает новую цену блюда и возвращает обновлённую позицию.
// Снимки цен в уже созданных заказах не затрагиваются.
func (r *PostgresRepository) SetMenuItemPrice(ctx context.Context, id int64, priceCents int64) (*model.MenuItem, error) {
	var m model.MenuItem
	err := r.pool.QueryRow(ctx,
		`UPDATE menu_items SET price_cents = $2 WHERE id = $1
		 RETURNING id, title, price_cents, featured, category_id`,
		id, priceCents,
	).Scan(&m.ID, &m.Title, &m.PriceCents, &m.Featured, &m.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("set price: %w", err)
	}
	return &m, nil
}
