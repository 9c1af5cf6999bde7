package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// UpsertCartLine добавляет блюдо в корзину пользователя.
// Повторное добавление того же блюда увеличивает количество существующей строки,
// при этом цена строки наращивается по зафиксированной unit_price, а не по текущей
// цене каталога. Инкремент выполняется одним оператором под уникальным
// ограничением (user_id, menuitem_id), поэтому параллельные добавления не гонятся.
func (r *PostgresRepository) UpsertCartLine(ctx context.Context, userID, menuItemID int64, quantity int32) (*model.CartLine, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var priceCents int64
	var featured bool
	err = tx.QueryRow(ctx,
		`SELECT price_cents, featured FROM menu_items WHERE id = $1`,
		menuItemID,
	).Scan(&priceCents, &featured)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}

	if !featured {
		return nil, ErrItemUnavailable
	}

	line := model.CartLine{
		UserID:     userID,
		MenuItemID: menuItemID,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO carts (user_id, menuitem_id, quantity, unit_price_cents, price_cents)
		 VALUES ($1, $2, $3, $4, $3::bigint * $4)
		 ON CONFLICT (user_id, menuitem_id) DO UPDATE
		 SET quantity = carts.quantity + EXCLUDED.quantity,
		     price_cents = carts.price_cents + EXCLUDED.quantity::bigint * carts.unit_price_cents
		 RETURNING id, quantity, unit_price_cents, price_cents`,
		userID, menuItemID, quantity, priceCents,
	).Scan(&line.ID, &line.Quantity, &line.UnitPriceCents, &line.PriceCents)
	if err != nil {
		return nil, fmt.Errorf("upsert cart line: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &line, nil
}

// GetCartLines возвращает строки корзины пользователя.
func (r *PostgresRepository) GetCartLines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, menuitem_id, quantity, unit_price_cents, price_cents
		 FROM carts
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select cart lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.ID, &l.UserID, &l.MenuItemID, &l.Quantity, &l.UnitPriceCents, &l.PriceCents); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return lines, nil
}

// ListAllCarts возвращает корзины всех пользователей с промежуточным итогом по каждому.
func (r *PostgresRepository) ListAllCarts(ctx context.Context) ([]model.UserCart, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.user_id, u.username, c.menuitem_id, c.quantity, c.unit_price_cents, c.price_cents
		 FROM carts c
		 JOIN users u ON u.id = c.user_id
		 ORDER BY u.username, c.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select all carts: %w", err)
	}
	defer rows.Close()

	var carts []model.UserCart
	for rows.Next() {
		var l model.CartLine
		var username string
		if err := rows.Scan(&l.ID, &l.UserID, &username, &l.MenuItemID, &l.Quantity, &l.UnitPriceCents, &l.PriceCents); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}

		if len(carts) == 0 || carts[len(carts)-1].UserID != l.UserID {
			carts = append(carts, model.UserCart{UserID: l.UserID, Username: username})
		}
		last := &carts[len(carts)-1]
		last.Lines = append(last.Lines, l)
		last.SubtotalCents += l.PriceCents
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return carts, nil
}

// ClearCart удаляет все строки корзины пользователя. Пустая корзина не считается ошибкой.
func (r *PostgresRepository) ClearCart(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
