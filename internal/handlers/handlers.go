package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"exchange_calculator/internal/calculator"
	"exchange_calculator/internal/funds"
	"exchange_calculator/internal/models"
	"exchange_calculator/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// RateSource отдаёт текущую таблицу курсов и её снимок
type RateSource interface {
	Table() *calculator.RateTable
	Snapshot() models.RatesResponse
}

// Зависимости для обработчиков
type Handler struct {
	rates    RateSource
	sessions *session.Manager
	validate *validator.Validate
	logger   *logrus.Logger
}

// Создаём новый экземпляр Handler
func New(rates RateSource, sessions *session.Manager, logger *logrus.Logger) *Handler {
	return &Handler{
		rates:    rates,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

// @Summary Текущие курсы
// @Description Возвращает загруженную таблицу курсов относительно базовой валюты
// @Tags rates
// @Produce json
// @Success 200 {object} models.RatesResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, h.rates.Snapshot())
}

// @Summary Список валют
// @Description Возвращает коды валют, начиная с базовой
// @Tags rates
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	table := h.rates.Table()
	h.writeJSONResponse(w, http.StatusOK, models.CurrenciesResponse{
		Base:       table.Base(),
		Currencies: table.Currencies(),
	})
}

// @Summary Разовый пересчёт суммы
// @Description Пересчитывает сумму без создания сессии. solve=to считает получаемую сумму по отдаваемой, solve=from наоборот.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Параметры пересчёта"
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req models.ConvertRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	from := normalizeCurrency(req.From)
	to := normalizeCurrency(req.To)

	mode := calculator.ModeCash
	if req.Mode != "" {
		mode = calculator.Mode(req.Mode)
	}
	solve := calculator.FieldTo
	if req.Solve != "" {
		solve = calculator.Field(req.Solve)
	}

	// Проверка поддерживаемых валют
	table := h.rates.Table()
	supported := table.Currencies()
	for _, code := range []string{from, to} {
		if !models.IsSupportedCurrencyFromList(code, supported) {
			h.writeErrorResponse(w, http.StatusBadRequest, "Validation error",
				fmt.Sprintf("Currency '%s' is not supported. Supported currencies: %v", code, supported))
			return
		}
	}

	var result float64
	if solve == calculator.FieldTo {
		result = table.ConvertTo(req.Amount, from, to, mode)
	} else {
		result = table.ConvertFrom(req.Amount, from, to, mode)
	}

	h.logger.WithFields(logrus.Fields{
		"from":   from,
		"to":     to,
		"mode":   mode,
		"solve":  solve,
		"amount": req.Amount,
		"result": result,
	}).Debug("Amount converted")

	h.writeJSONResponse(w, http.StatusOK, models.ConvertResponse{
		Amount: req.Amount,
		Result: result,
		From:   from,
		To:     to,
		Mode:   string(mode),
		Solve:  string(solve),
	})
}

// @Summary Создать сессию калькулятора
// @Description Создаёт калькулятор на текущей таблице курсов. Все поля необязательны.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body models.CreateSessionRequest false "Начальные валюты и режим"
// @Success 201 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if !h.decodeAndValidate(w, r, &req, true) {
		return
	}

	id, state, err := h.sessions.Create(session.Options{
		From: normalizeCurrency(req.From),
		To:   normalizeCurrency(req.To),
		Mode: calculator.Mode(req.Mode),
	})
	if err != nil {
		h.writeDomainError(w, err, "")
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, toSessionResponse(id, state))
}

// @Summary Состояние сессии
// @Tags sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.apply(w, id, nil)
}

// @Summary Удалить сессию
// @Tags sessions
// @Param id path string true "ID сессии"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.sessions.Delete(id); err != nil {
		h.writeDomainError(w, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Сменить режим обмена
// @Description Переключает наличный/безналичный курс и пересчитывает зависимую сумму
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body models.SetModeRequest true "Режим"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/mode [put]
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.SetModeRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	h.apply(w, id, func(c *calculator.Calculator) error {
		return c.SetMode(calculator.Mode(req.Mode))
	})
}

// @Summary Сменить валюты
// @Description Меняет отдаваемую и/или получаемую валюту. Пустое поле оставляет текущую.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body models.SetCurrenciesRequest true "Валюты"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/currencies [put]
func (h *Handler) SetCurrencies(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.SetCurrenciesRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	h.apply(w, id, func(c *calculator.Calculator) error {
		from := normalizeCurrency(req.From)
		if from == "" {
			from = c.FromCurrency()
		}
		to := normalizeCurrency(req.To)
		if to == "" {
			to = c.ToCurrency()
		}
		return c.SetCurrencies(from, to)
	})
}

// @Summary Фокус на поле ввода
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body models.FocusRequest true "Поле"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/focus [post]
func (h *Handler) Focus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.FocusRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	h.apply(w, id, func(c *calculator.Calculator) error {
		return c.Focus(calculator.Field(req.Field))
	})
}

// @Summary Снять фокус
// @Tags sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/blur [post]
func (h *Handler) Blur(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.apply(w, id, func(c *calculator.Calculator) error {
		c.Blur()
		return nil
	})
}

// @Summary Ввод суммы
// @Description Передаёт текст поля целиком. Поле должно быть в фокусе. accepted=false, если ввод отклонён.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body models.InputRequest true "Текст поля"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/input [post]
func (h *Handler) Input(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.InputRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	var accepted bool
	state, err := h.sessions.Do(id, func(c *calculator.Calculator) error {
		accepted = c.SetInput(calculator.Field(req.Field), req.Text)
		return nil
	})
	if err != nil {
		h.writeDomainError(w, err, id)
		return
	}

	response := toSessionResponse(id, state)
	response.Accepted = &accepted
	h.writeJSONResponse(w, http.StatusOK, response)
}

// @Summary Поменять валюты местами
// @Description Меняет валюты и суммы местами и пересчитывает получаемую сумму
// @Tags sessions
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} models.SessionResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions/{id}/swap [post]
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.apply(w, id, func(c *calculator.Calculator) error {
		c.Swap()
		return nil
	})
}

// @Summary Счета клиента
// @Tags funds
// @Produce json
// @Success 200 {array} models.Account
// @Router /accounts [get]
func (h *Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, funds.Accounts())
}

// @Summary Карты клиента
// @Tags funds
// @Produce json
// @Success 200 {array} models.Card
// @Router /cards [get]
func (h *Handler) GetCards(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, funds.Cards())
}

// @Summary Источники средств
// @Description Счета и карты одним списком
// @Tags funds
// @Produce json
// @Success 200 {array} models.SourceItem
// @Router /sources [get]
func (h *Handler) GetSources(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, funds.MergedItems(funds.Accounts(), funds.Cards()))
}

// @Summary Health check
// @Description Проверка состояния сервиса
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":     "healthy",
		"service":    "exchange-calculator",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"currencies": len(h.rates.Table().Currencies()),
		"sessions":   h.sessions.Len(),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// Выполняем действие над сессией и отвечаем её новым состоянием
func (h *Handler) apply(w http.ResponseWriter, id string, fn func(*calculator.Calculator) error) {
	state, err := h.sessions.Do(id, fn)
	if err != nil {
		h.writeDomainError(w, err, id)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, toSessionResponse(id, state))
}

// Читаем тело запроса и проверяем его validator'ом
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, allowEmpty bool) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON", err.Error())
			return false
		}
	}

	if err := h.validate.Struct(dst); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return false
	}
	return true
}

// Переводим ошибки предметной области в HTTP статусы
func (h *Handler) writeDomainError(w http.ResponseWriter, err error, sessionID string) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		h.writeErrorResponse(w, http.StatusNotFound, "Not found", "Session not found")
	case errors.Is(err, session.ErrTooManySessions):
		h.writeErrorResponse(w, http.StatusTooManyRequests, "Too many sessions", err.Error())
	case errors.Is(err, calculator.ErrUnknownCurrency),
		errors.Is(err, calculator.ErrInvalidMode),
		errors.Is(err, calculator.ErrInvalidField):
		h.writeErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
	default:
		h.logger.WithError(err).WithField("session_id", sessionID).Error("Session operation failed")
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal error", "Session operation failed")
	}
}

func toSessionResponse(id string, s calculator.State) models.SessionResponse {
	return models.SessionResponse{
		ID:          id,
		Mode:        string(s.Mode),
		From:        s.From,
		To:          s.To,
		FromOptions: s.FromOptions,
		ToOptions:   s.ToOptions,
		FromAmount:  s.FromAmount,
		ToAmount:    s.ToAmount,
		RawFrom:     s.RawFrom,
		RawTo:       s.RawTo,
		LastEdited:  string(s.LastEdited),
		Editing:     string(s.Editing),
	}
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Записываем JSON ответ
func (h *Handler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.WithError(err).Error("Failed to encode JSON response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Записываем JSON ответ с ошибкой
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, error, message string) {
	response := models.ErrorResponse{
		Error:   error,
		Message: message,
	}

	h.writeJSONResponse(w, statusCode, response)
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods("GET")

	router.HandleFunc("/rates", h.GetRates).Methods("GET")
	router.HandleFunc("/currencies", h.GetCurrencies).Methods("GET")
	router.HandleFunc("/convert", h.Convert).Methods("POST")

	router.HandleFunc("/sessions", h.CreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}", h.DeleteSession).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/mode", h.SetMode).Methods("PUT")
	router.HandleFunc("/sessions/{id}/currencies", h.SetCurrencies).Methods("PUT")
	router.HandleFunc("/sessions/{id}/focus", h.Focus).Methods("POST")
	router.HandleFunc("/sessions/{id}/blur", h.Blur).Methods("POST")
	router.HandleFunc("/sessions/{id}/input", h.Input).Methods("POST")
	router.HandleFunc("/sessions/{id}/swap", h.Swap).Methods("POST")

	router.HandleFunc("/accounts", h.GetAccounts).Methods("GET")
	router.HandleFunc("/cards", h.GetCards).Methods("GET")
	router.HandleFunc("/sources", h.GetSources).Methods("GET")
}
