package main

import (
	"context"
	"testing"

	"exchange_calculator/internal/config"
	"exchange_calculator/internal/database"
	"exchange_calculator/internal/logger"
	"exchange_calculator/internal/models"
	"exchange_calculator/internal/rates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInitialRates_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard()

	store, err := database.New(&config.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"}, log)
	require.NoError(t, err)
	defer store.Close()

	source := rates.New("AMD", log)
	require.NoError(t, loadInitialRates(ctx, store, source, log))

	assert.Equal(t, []string{"AMD", "USD", "EUR", "RUR", "CHF", "GBP"}, source.Table().Currencies())

	stored, err := store.ListRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, rates.DefaultQuotes(), stored)
}

func TestLoadInitialRates_UsesStoredRates(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard()

	store, err := database.New(&config.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"}, log)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.ReplaceRates(ctx, []models.RateQuote{
		{ExternalID: "JPY", CashSell: 2.8, CashlessSell: 2.79, CashBuy: 2.6, CashlessBuy: 2.61},
	}))

	source := rates.New("AMD", log)
	require.NoError(t, loadInitialRates(ctx, store, source, log))

	assert.Equal(t, []string{"AMD", "JPY"}, source.Table().Currencies())
}
