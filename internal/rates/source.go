package rates

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"exchange_calculator/internal/calculator"
	"exchange_calculator/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var ErrInvalidRates = errors.New("invalid rates")

// Source хранит текущую таблицу курсов.
// Новая таблица подменяет старую целиком, уже созданные калькуляторы продолжают работать со своей.
type Source struct {
	mu       sync.RWMutex
	base     string
	table    *calculator.RateTable
	quotes   []models.RateQuote
	loadedAt time.Time

	validate *validator.Validate
	logger   *logrus.Logger
}

// Создаём источник с пустой таблицей (только базовая валюта)
func New(base string, logger *logrus.Logger) *Source {
	if base == "" {
		base = calculator.DefaultBase
	}
	return &Source{
		base:     base,
		table:    calculator.NewRateTable(base, nil),
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *Source) Base() string {
	return s.base
}

// Проверяем и загружаем новый набор котировок
func (s *Source) Load(quotes []models.RateQuote) error {
	if len(quotes) == 0 {
		return fmt.Errorf("%w: empty rate list", ErrInvalidRates)
	}

	seen := make(map[string]struct{}, len(quotes))
	stored := make([]models.RateQuote, 0, len(quotes))
	for i, q := range quotes {
		if err := s.validate.Struct(q); err != nil {
			return fmt.Errorf("%w: quote %d (%s): %v", ErrInvalidRates, i, q.ExternalID, err)
		}
		q.ExternalID = strings.ToUpper(q.ExternalID)
		// Курс базовой валюты к себе всегда 1
		if q.ExternalID == s.base {
			s.logger.WithField("currency", q.ExternalID).Warn("Ignoring quote for base currency")
			continue
		}
		if _, dup := seen[q.ExternalID]; dup {
			return fmt.Errorf("%w: duplicate currency %s", ErrInvalidRates, q.ExternalID)
		}
		seen[q.ExternalID] = struct{}{}
		stored = append(stored, q)
	}

	table := calculator.NewRateTable(s.base, ToCalculatorQuotes(stored))

	s.mu.Lock()
	s.table = table
	s.quotes = stored
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"base":       s.base,
		"currencies": len(stored),
	}).Info("Rate table loaded")

	return nil
}

// Текущая таблица курсов
func (s *Source) Table() *calculator.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Снимок загруженных котировок для API
func (s *Source) Snapshot() models.RatesResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quotes := make([]models.RateQuote, len(s.quotes))
	copy(quotes, s.quotes)

	return models.RatesResponse{
		Base:     s.base,
		LoadedAt: s.loadedAt,
		Rates:    quotes,
	}
}

func ToCalculatorQuotes(quotes []models.RateQuote) []calculator.RateQuote {
	result := make([]calculator.RateQuote, 0, len(quotes))
	for _, q := range quotes {
		result = append(result, calculator.RateQuote{
			ExternalID:   q.ExternalID,
			CashSell:     q.CashSell,
			CashlessSell: q.CashlessSell,
			CashBuy:      q.CashBuy,
			CashlessBuy:  q.CashlessBuy,
		})
	}
	return result
}

// Демонстрационная таблица курсов к AMD
func DefaultQuotes() []models.RateQuote {
	return []models.RateQuote{
		{ExternalID: "USD", CashSell: 409, CashlessSell: 407.75, CashBuy: 402, CashlessBuy: 401.25},
		{ExternalID: "EUR", CashSell: 425, CashlessSell: 420.5, CashBuy: 410, CashlessBuy: 404.5},
		{ExternalID: "RUR", CashSell: 6.9, CashlessSell: 6.97, CashBuy: 6.4, CashlessBuy: 6.42},
		{ExternalID: "CHF", CashSell: 436, CashlessSell: 435.5, CashBuy: 415, CashlessBuy: 415.5},
		{ExternalID: "GBP", CashSell: 502, CashlessSell: 501.5, CashBuy: 477, CashlessBuy: 477.5},
	}
}
