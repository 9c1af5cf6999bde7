package repository

import (
	"context"
	"fmt"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// HasPurchased сообщает, покупал ли пользователь указанное блюдо:
// существует ли order_item, связывающий его заказ с этим блюдом.
func (r *PostgresRepository) HasPurchased(ctx context.Context, userID, menuItemID int64) (bool, error) {
	var purchased bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.user_id = $1 AND oi.menuitem_id = $2
		)`,
		userID, menuItemID,
	).Scan(&purchased)
	if err != nil {
		return false, fmt.Errorf("check purchase: %w", err)
	}
	return purchased, nil
}

// CreateRating сохраняет оценку. Повторная оценка той же сущности тем же
// пользователем отсекается уникальным ограничением, гонка двух параллельных
// запросов превращается в ErrAlreadyRated.
func (r *PostgresRepository) CreateRating(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO rates (user_id, rate, content_type, object_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		rating.UserID, rating.Rate, string(rating.Target.Kind), rating.Target.ID,
	).Scan(&rating.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRated
		}
		return nil, fmt.Errorf("insert rating: %w", err)
	}
	return &rating, nil
}

// RatingSummary возвращает количество и среднее значение оценок сущности.
// Отсутствие оценок — не ошибка: возвращается нулевой агрегат.
func (r *PostgresRepository) RatingSummary(ctx context.Context, target model.RatingTarget) (model.RatingSummary, error) {
	var s model.RatingSummary
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(rate), 0)
		 FROM rates
		 WHERE content_type = $1 AND object_id = $2`,
		string(target.Kind), target.ID,
	).Scan(&s.Count, &s.Average)
	if err != nil {
		return model.RatingSummary{}, fmt.Errorf("rating summary: %w", err)
	}
	return s, nil
}
