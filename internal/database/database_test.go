package database

import (
	"context"
	"path/filepath"
	"testing"

	"exchange_calculator/internal/config"
	"exchange_calculator/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, path string) *DB {
	t.Helper()
	db, err := New(&config.DatabaseConfig{Driver: DriverSQLite, Path: path}, logrus.New())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_ReplaceAndList(t *testing.T) {
	db := newTestDB(t, ":memory:")
	ctx := context.Background()

	quotes, err := db.ListRates(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)

	first := []models.RateQuote{
		{ExternalID: "USD", CashSell: 409, CashlessSell: 407.75, CashBuy: 402, CashlessBuy: 401.25},
		{ExternalID: "EUR", CashSell: 425, CashlessSell: 420.5, CashBuy: 410, CashlessBuy: 404.5},
		{ExternalID: "RUR", CashSell: 6.9, CashlessSell: 6.97, CashBuy: 6.4, CashlessBuy: 6.42},
	}
	require.NoError(t, db.ReplaceRates(ctx, first))

	quotes, err = db.ListRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, quotes)

	// Обновление заменяет таблицу целиком
	second := []models.RateQuote{
		{ExternalID: "GBP", CashSell: 502, CashlessSell: 501.5, CashBuy: 477, CashlessBuy: 477.5},
		{ExternalID: "USD", CashSell: 410, CashlessSell: 408, CashBuy: 403, CashlessBuy: 402},
	}
	require.NoError(t, db.ReplaceRates(ctx, second))

	quotes, err = db.ListRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, quotes)
}

func TestDB_ReplaceRollsBackOnError(t *testing.T) {
	db := newTestDB(t, ":memory:")
	ctx := context.Background()

	original := []models.RateQuote{{ExternalID: "USD", CashSell: 409, CashlessSell: 407.75, CashBuy: 402, CashlessBuy: 401.25}}
	require.NoError(t, db.ReplaceRates(ctx, original))

	// Повтор первичного ключа ломает вставку
	duplicate := []models.RateQuote{
		{ExternalID: "EUR", CashSell: 425, CashlessSell: 420.5, CashBuy: 410, CashlessBuy: 404.5},
		{ExternalID: "EUR", CashSell: 425, CashlessSell: 420.5, CashBuy: 410, CashlessBuy: 404.5},
	}
	assert.Error(t, db.ReplaceRates(ctx, duplicate))

	quotes, err := db.ListRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, quotes)
}

func TestDB_FileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rates.db")
	ctx := context.Background()

	db, err := New(&config.DatabaseConfig{Driver: DriverSQLite, Path: path}, logrus.New())
	require.NoError(t, err)
	require.NoError(t, db.ReplaceRates(ctx, []models.RateQuote{{ExternalID: "CHF", CashSell: 436, CashlessSell: 435.5, CashBuy: 415, CashlessBuy: 415.5}}))
	require.NoError(t, db.Close())

	reopened := newTestDB(t, path)
	quotes, err := reopened.ListRates(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "CHF", quotes[0].ExternalID)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"}, logrus.New())
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	pg := &DB{driver: DriverPostgres}
	lite := &DB{driver: DriverSQLite}
	query := `INSERT INTO rates (a, b, c) VALUES (?, ?, ?)`

	assert.Equal(t, `INSERT INTO rates (a, b, c) VALUES ($1, $2, $3)`, pg.rebind(query))
	assert.Equal(t, query, lite.rebind(query))
}
