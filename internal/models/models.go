package models

import (
	"time"
)

// Проверяем, поддерживается ли валюта из заданного списка
func IsSupportedCurrencyFromList(currency string, supportedList []string) bool {
	for _, supported := range supportedList {
		if supported == currency {
			return true
		}
	}
	return false
}

// Котировка валюты относительно базовой
type RateQuote struct {
	ExternalID   string  `json:"external_id" db:"external_id" validate:"required,alphanum,min=3,max=10"`
	CashSell     float64 `json:"cash_sell" db:"cash_sell" validate:"gt=0"`
	CashlessSell float64 `json:"cashless_sell" db:"cashless_sell" validate:"gt=0"`
	CashBuy      float64 `json:"cash_buy" db:"cash_buy" validate:"gt=0"`
	CashlessBuy  float64 `json:"cashless_buy" db:"cashless_buy" validate:"gt=0"`
}

// Ответ со всеми курсами
type RatesResponse struct {
	Base     string      `json:"base"`
	LoadedAt time.Time   `json:"loaded_at"`
	Rates    []RateQuote `json:"rates"`
}

// Ответ со списком валют
type CurrenciesResponse struct {
	Base       string   `json:"base"`
	Currencies []string `json:"currencies"`
}

// Разовый пересчёт суммы без сессии
type ConvertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from" validate:"required"`
	To     string  `json:"to" validate:"required"`
	Mode   string  `json:"mode" validate:"omitempty,oneof=cash cashless"`
	Solve  string  `json:"solve" validate:"omitempty,oneof=from to"` // какую сторону считаем, по умолчанию "to"
}

type ConvertResponse struct {
	Amount float64 `json:"amount"`
	Result float64 `json:"result"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Mode   string  `json:"mode"`
	Solve  string  `json:"solve"`
}

// Запрос на создание сессии калькулятора
type CreateSessionRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Mode string `json:"mode,omitempty" validate:"omitempty,oneof=cash cashless"`
}

type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=cash cashless"`
}

type SetCurrenciesRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type FocusRequest struct {
	Field string `json:"field" validate:"required,oneof=from to"`
}

type InputRequest struct {
	Field string `json:"field" validate:"required,oneof=from to"`
	Text  string `json:"text"`
}

// Состояние сессии калькулятора
type SessionResponse struct {
	ID          string   `json:"id"`
	Mode        string   `json:"mode"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	FromOptions []string `json:"from_options"`
	ToOptions   []string `json:"to_options"`
	FromAmount  string   `json:"from_amount"`
	ToAmount    string   `json:"to_amount"`
	RawFrom     float64  `json:"raw_from"`
	RawTo       float64  `json:"raw_to"`
	LastEdited  string   `json:"last_edited"`
	Editing     string   `json:"editing,omitempty"`
	Accepted    *bool    `json:"accepted,omitempty"` // только для ответа на ввод
}

// Ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Ответ от внешнего источника курсов
type ExternalAPIResponse struct {
	Success bool        `json:"success"`
	Base    string      `json:"base"`
	Date    string      `json:"date"`
	Rates   []RateQuote `json:"rates"`
}

// Счёт клиента
type Account struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// Карта клиента
type Card struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
}

// Источник средств: счёт или карта в одном списке
type SourceItem struct {
	Key    string      `json:"key"`
	RawID  interface{} `json:"raw_id"`
	Type   string      `json:"type"`
	Name   string      `json:"name"`
	Amount float64     `json:"amount"`
}
