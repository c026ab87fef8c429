package calculator

import (
	"errors"
	"fmt"
)

// Базовая валюта по умолчанию: курс к самой себе всегда 1
const DefaultBase = "AMD"

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidField    = errors.New("invalid field")
)

// Режим обмена: наличный или безналичный
type Mode string

const (
	ModeCash     Mode = "cash"
	ModeCashless Mode = "cashless"
)

func (m Mode) Valid() bool {
	return m == ModeCash || m == ModeCashless
}

// Разбираем режим обмена из строки
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// Направление курса: sell - продажа валюты клиенту, buy - покупка у клиента
type Direction string

const (
	Sell Direction = "sell"
	Buy  Direction = "buy"
)

// Котировка одной валюты относительно базовой
type RateQuote struct {
	ExternalID   string
	CashSell     float64
	CashlessSell float64
	CashBuy      float64
	CashlessBuy  float64
}

func (q RateQuote) rate(mode Mode, direction Direction) float64 {
	if mode == ModeCash {
		if direction == Buy {
			return q.CashBuy
		}
		return q.CashSell
	}
	if direction == Buy {
		return q.CashlessBuy
	}
	return q.CashlessSell
}

// RateTable is an immutable lookup of quotes keyed by currency code.
// The base currency is always present at parity, whatever the input says.
// A table is safe for concurrent reads and may be shared between calculators.
type RateTable struct {
	base   string
	quotes map[string]RateQuote
	codes  []string
}

// Строим таблицу курсов. Порядок валют: базовая, затем в порядке входного списка.
// При повторе кода остаются последние значения, позиция - первая.
func NewRateTable(base string, quotes []RateQuote) *RateTable {
	if base == "" {
		base = DefaultBase
	}

	t := &RateTable{
		base:   base,
		quotes: make(map[string]RateQuote, len(quotes)+1),
		codes:  make([]string, 0, len(quotes)+1),
	}

	t.quotes[base] = RateQuote{ExternalID: base, CashSell: 1, CashlessSell: 1, CashBuy: 1, CashlessBuy: 1}
	t.codes = append(t.codes, base)

	for _, q := range quotes {
		if q.ExternalID == "" || q.ExternalID == base {
			continue
		}
		if _, exists := t.quotes[q.ExternalID]; !exists {
			t.codes = append(t.codes, q.ExternalID)
		}
		t.quotes[q.ExternalID] = q
	}

	return t
}

func (t *RateTable) Base() string {
	return t.base
}

// Список кодов валют (копия)
func (t *RateTable) Currencies() []string {
	codes := make([]string, len(t.codes))
	copy(codes, t.codes)
	return codes
}

func (t *RateTable) Has(code string) bool {
	_, ok := t.quotes[code]
	return ok
}

func (t *RateTable) Quote(code string) (RateQuote, bool) {
	q, ok := t.quotes[code]
	return q, ok
}

// Lookup returns the quote field for currency selected by mode and direction.
func (t *RateTable) Lookup(currency string, mode Mode, direction Direction) (float64, error) {
	q, ok := t.quotes[currency]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, currency)
	}
	return q.rate(mode, direction), nil
}

// Rate is Lookup for callers that already guarantee membership.
// An unknown currency means the table and the selection are out of sync, so it panics.
func (t *RateTable) Rate(currency string, mode Mode, direction Direction) float64 {
	rate, err := t.Lookup(currency, mode, direction)
	if err != nil {
		panic(err)
	}
	return rate
}
