package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"exchange_calculator/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(&config.ExternalConfig{
		BaseURL: server.URL + "/",
		APIKey:  apiKey,
		Timeout: 5 * time.Second,
	}, "AMD", logrus.New())
}

func TestClient_GetRates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rates", r.URL.Path)
		assert.Equal(t, "AMD", r.URL.Query().Get("base"))
		assert.Equal(t, "secret", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"base": "AMD",
			"date": "2025-01-01",
			"rates": [
				{"external_id": "USD", "cash_sell": 409, "cashless_sell": 407.75, "cash_buy": 402, "cashless_buy": 401.25},
				{"external_id": "EUR", "cash_sell": 425, "cashless_sell": 420.5, "cash_buy": 410, "cashless_buy": 404.5}
			]
		}`))
	}, "secret")

	quotes, err := client.GetRates(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "USD", quotes[0].ExternalID)
	assert.Equal(t, 407.75, quotes[0].CashlessSell)
	assert.Equal(t, 404.5, quotes[1].CashlessBuy)
}

func TestClient_GetRates_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "Bad status", status: http.StatusBadGateway, body: `{}`, wantErr: "API returned status 502"},
		{name: "Invalid JSON", status: http.StatusOK, body: `{"success":`, wantErr: "failed to unmarshal response"},
		{name: "Not successful", status: http.StatusOK, body: `{"success": false}`, wantErr: "success=false"},
		{name: "Wrong base", status: http.StatusOK, body: `{"success": true, "base": "USD", "rates": []}`, wantErr: "expected AMD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("apikey"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}, "")

			_, err := client.GetRates(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_GetRates_Cancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "rates": []}`))
	}, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetRates(ctx)
	assert.Error(t, err)
}
