package repository

import (
	"context"
	"fmt"
	"time"
)

// SalesBetween возвращает сумму и количество заказов с датой в [from, to] включительно.
func (r *PostgresRepository) SalesBetween(ctx context.Context, from, to time.Time) (int64, int64, error) {
	var totalCents, count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_cents), 0), COUNT(*)
		 FROM orders
		 WHERE date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&totalCents, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("sum sales: %w", err)
	}
	return totalCents, count, nil
}
