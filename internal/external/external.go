package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"exchange_calculator/internal/config"
	"exchange_calculator/internal/models"

	"github.com/sirupsen/logrus"
)

// Клиент для работы с внешним источником курсов
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	base       string
	logger     *logrus.Logger
}

// Создаём новый клиент для внешнего API
func New(cfg *config.ExternalConfig, base string, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		base:    base,
		logger:  logger,
	}
}

// Получаем полный список котировок относительно базовой валюты
func (c *Client) GetRates(ctx context.Context) ([]models.RateQuote, error) {
	url := fmt.Sprintf("%s/rates?base=%s", c.baseURL, c.base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Добавляем API ключ если он есть
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	req.Header.Set("User-Agent", "Exchange-Calculator/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.WithField("response_body", string(body)).Debug("Rates feed response")

	var apiResp models.ExternalAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !apiResp.Success {
		return nil, fmt.Errorf("API returned success=false")
	}

	if apiResp.Base != "" && !strings.EqualFold(apiResp.Base, c.base) {
		return nil, fmt.Errorf("API returned rates for base %s, expected %s", apiResp.Base, c.base)
	}

	c.logger.WithFields(logrus.Fields{
		"base":        c.base,
		"date":        apiResp.Date,
		"rates_count": len(apiResp.Rates),
	}).Info("Successfully retrieved exchange rates")

	return apiResp.Rates, nil
}
