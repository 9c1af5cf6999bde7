package service

import (
	"context"

	"github.com/t7spotter/restaurantAPI/internal/model"
	"github.com/t7spotter/restaurantAPI/internal/validation"
)

// targetExists проверяет существование оцениваемой сущности по её виду.
// Новые виды сущностей добавляются новыми ветками.
func (s *Service) targetExists(ctx context.Context, target model.RatingTarget) error {
	switch target.Kind {
	case model.RatingTargetMenuItem:
		_, err := s.repo.GetMenuItem(ctx, target.ID)
		return err
	default:
		return ErrUnknownRatingTarget
	}
}

// SubmitRating сохраняет оценку пользователя.
// Требуется подтверждение покупки: хотя бы один order_item должен связывать
// пользователя с оцениваемым блюдом.
func (s *Service) SubmitRating(ctx context.Context, userID int64, target model.RatingTarget, rate int16) (*model.Rating, error) {
	if !validation.ValidRate(rate) {
		return nil, ErrInvalidRate
	}

	if err := s.targetExists(ctx, target); err != nil {
		return nil, err
	}

	purchased, err := s.repo.HasPurchased(ctx, userID, target.ID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, ErrNotPurchased
	}

	return s.repo.CreateRating(ctx, model.Rating{
		UserID: userID,
		Rate:   rate,
		Target: target,
	})
}

// RatingSummary возвращает количество и среднее значение оценок сущности.
// Сущность без оценок даёт нулевой агрегат.
func (s *Service) RatingSummary(ctx context.Context, target model.RatingTarget) (model.RatingSummary, error) {
	if err := s.targetExists(ctx, target); err != nil {
		return model.RatingSummary{}, err
	}
	return s.repo.RatingSummary(ctx, target)
}
