package service

import (
	"context"
	"time"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// DailySales возвращает итог продаж за один день.
func (s *Service) DailySales(ctx context.Context, date time.Time) (*model.SalesReport, error) {
	return s.RangeSales(ctx, date, date)
}

// RangeSales возвращает итог продаж за период [from, to] включительно.
func (s *Service) RangeSales(ctx context.Context, from, to time.Time) (*model.SalesReport, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	totalCents, count, err := s.repo.SalesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &model.SalesReport{
		From:       from,
		To:         to,
		TotalCents: totalCents,
		Orders:     count,
	}, nil
}
