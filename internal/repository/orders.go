package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

const orderColumns = `id, user_id, delivery_crew_id, status, total_cents, date, delivered_time`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.DeliveryCrewID, &o.Status, &o.TotalCents, &o.Date, &o.DeliveredTime)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrderFromCart атомарно оформляет заказ из корзины пользователя:
// создаётся заказ с суммой по строкам корзины, снимки строк переносятся в
// order_items, назначается случайный готовый к работе курьер, корзина очищается.
// При любой ошибке транзакция откатывается целиком: заказ без позиций или
// неочищенная корзина невозможны.
func (r *PostgresRepository) CreateOrderFromCart(ctx context.Context, userID int64) (*model.Order, []model.OrderItem, error) {
	var order *model.Order
	var items []model.OrderItem

	err := r.withRetry(ctx, func() error {
		var err error
		order, items, err = r.createOrderFromCart(ctx, userID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (r *PostgresRepository) createOrderFromCart(ctx context.Context, userID int64) (*model.Order, []model.OrderItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Блокируем строки корзины, чтобы параллельное добавление не попало
	// между подсчётом суммы и переносом снимков.
	rows, err := tx.Query(ctx,
		`SELECT menuitem_id, quantity, price_cents FROM carts WHERE user_id = $1 ORDER BY id FOR UPDATE`,
		userID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("select cart for update: %w", err)
	}

	var lines []model.CartLine
	var totalCents int64
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.MenuItemID, &l.Quantity, &l.PriceCents); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
		totalCents += l.PriceCents
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("rows error: %w", err)
	}

	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	// Курьер выбирается равновероятно среди активных участников группы delivery
	// с ready_to_work = true.
	var crewID int64
	err = tx.QueryRow(ctx,
		`SELECT u.id
		 FROM users u
		 JOIN user_groups ug ON ug.user_id = u.id AND ug.group_name = $1
		 WHERE u.is_active AND u.ready_to_work IS TRUE
		 ORDER BY random()
		 LIMIT 1`,
		string(model.GroupDelivery),
	).Scan(&crewID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNoDeliveryAvailable
		}
		return nil, nil, fmt.Errorf("pick delivery crew: %w", err)
	}

	order := model.Order{
		UserID:         userID,
		DeliveryCrewID: &crewID,
		TotalCents:     totalCents,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, delivery_crew_id, status, total_cents, date)
		 VALUES ($1, $2, FALSE, $3, CURRENT_DATE)
		 RETURNING id, date`,
		userID, crewID, totalCents,
	).Scan(&order.ID, &order.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("insert order: %w", err)
	}

	items := make([]model.OrderItem, 0, len(lines))
	itemIDs := make([]int64, 0, len(lines))
	for _, l := range lines {
		itemIDs = append(itemIDs, l.MenuItemID)
		item := model.OrderItem{
			OrderID:    order.ID,
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
			PriceCents: l.PriceCents,
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, menuitem_id, quantity, price_cents)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			item.OrderID, item.MenuItemID, item.Quantity, item.PriceCents,
		).Scan(&item.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("insert order item: %w", err)
		}
		items = append(items, item)
	}

	// Удаляются только прочитанные под блокировкой пары (user, menuitem):
	// строка, добавленная параллельно после FOR UPDATE, остаётся в корзине,
	// а не пропадает молча из корзины и заказа сразу.
	if _, err := tx.Exec(ctx,
		`DELETE FROM carts WHERE user_id = $1 AND menuitem_id = ANY($2)`,
		userID, itemIDs,
	); err != nil {
		return nil, nil, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit tx: %w", err)
	}

	return &order, items, nil
}

// GetOrder возвращает заказ по идентификатору.
func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetOrderItems возвращает позиции заказа.
func (r *PostgresRepository) GetOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, menuitem_id, quantity, price_cents
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.PriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) selectOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// ListAllOrders возвращает все заказы для менеджера: новые сначала, затем по пользователю.
func (r *PostgresRepository) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	return r.selectOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY date DESC, user_id, id`)
}

// ListOrdersByUser возвращает заказы покупателя по возрастанию даты.
func (r *PostgresRepository) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.selectOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY date, id`, userID)
}

// ListOrdersByCrew возвращает заказы, назначенные указанному курьеру.
func (r *PostgresRepository) ListOrdersByCrew(ctx context.Context, crewID int64) ([]model.Order, error) {
	return r.selectOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE delivery_crew_id = $1 ORDER BY date, id`, crewID)
}

// MarkDelivered отмечает заказ доставленным и проставляет время доставки.
// Разрешено только назначенному курьеру; повторная отметка — ошибка.
func (r *PostgresRepository) MarkDelivered(ctx context.Context, orderID, crewID int64) (*model.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx,
		`UPDATE orders SET status = TRUE, delivered_time = now()
		 WHERE id = $1 AND delivery_crew_id = $2 AND status = FALSE
		 RETURNING `+orderColumns,
		orderID, crewID,
	))
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("mark delivered: %w", err)
	}

	// Переход не состоялся: выясняем причину по текущему состоянию заказа.
	existing, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing.DeliveryCrewID == nil || *existing.DeliveryCrewID != crewID {
		return nil, ErrNotAssigned
	}
	return nil, ErrAlreadyDelivered
}

// SetDeliveryCrew назначает заказу нового курьера, не трогая статус.
// Кандидат обязан состоять в группе delivery и быть готовым к работе.
func (r *PostgresRepository) SetDeliveryCrew(ctx context.Context, orderID, crewID int64) (*model.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var ready *bool
	err = tx.QueryRow(ctx,
		`SELECT u.ready_to_work
		 FROM users u
		 JOIN user_groups ug ON ug.user_id = u.id AND ug.group_name = $2
		 WHERE u.id = $1`,
		crewID, string(model.GroupDelivery),
	).Scan(&ready)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotDeliveryCrew
		}
		return nil, fmt.Errorf("check delivery crew: %w", err)
	}
	if ready == nil || !*ready {
		return nil, ErrCrewNotReady
	}

	o, err := scanOrder(tx.QueryRow(ctx,
		`UPDATE orders SET delivery_crew_id = $2 WHERE id = $1 RETURNING `+orderColumns,
		orderID, crewID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("set delivery crew: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return o, nil
}
