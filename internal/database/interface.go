package database

import (
	"context"

	"exchange_calculator/internal/models"
)

// RateStore определяет интерфейс хранилища курсов
type RateStore interface {
	ListRates(ctx context.Context) ([]models.RateQuote, error)
	ReplaceRates(ctx context.Context, quotes []models.RateQuote) error
	Close() error
}

// Убеждаемся, что DB реализует RateStore
var _ RateStore = (*DB)(nil)
