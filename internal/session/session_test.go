package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"exchange_calculator/internal/calculator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTables struct {
	table *calculator.RateTable
}

func (s *staticTables) Table() *calculator.RateTable {
	return s.table
}

func testTable() *calculator.RateTable {
	return calculator.NewRateTable("AMD", []calculator.RateQuote{
		{ExternalID: "USD", CashSell: 409, CashlessSell: 407.75, CashBuy: 402, CashlessBuy: 401.25},
		{ExternalID: "EUR", CashSell: 425, CashlessSell: 420.5, CashBuy: 410, CashlessBuy: 404.5},
	})
}

func newTestManager(ttl time.Duration, max int) (*Manager, *staticTables) {
	tables := &staticTables{table: testTable()}
	return NewManager(tables, ttl, max, logrus.New()), tables
}

func TestManager_CreateDefaults(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)

	id, state, err := m.Create(Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, calculator.ModeCash, state.Mode)
	assert.Equal(t, "AMD", state.From)
	assert.Equal(t, "USD", state.To)
	assert.Equal(t, "0.00", state.FromAmount)
	assert.Equal(t, 1, m.Len())
}

func TestManager_CreateInvalid(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)

	_, _, err := m.Create(Options{From: "XXX"})
	assert.True(t, errors.Is(err, calculator.ErrUnknownCurrency))

	_, _, err = m.Create(Options{Mode: "barter"})
	assert.True(t, errors.Is(err, calculator.ErrInvalidMode))

	assert.Equal(t, 0, m.Len())
}

func TestManager_CreateLimit(t *testing.T) {
	m, _ := newTestManager(time.Minute, 1)

	_, _, err := m.Create(Options{})
	require.NoError(t, err)

	_, _, err = m.Create(Options{})
	assert.True(t, errors.Is(err, ErrTooManySessions))
}

func TestManager_Do(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)
	id, _, err := m.Create(Options{})
	require.NoError(t, err)

	state, err := m.Do(id, func(c *calculator.Calculator) error {
		if err := c.Focus(calculator.FieldFrom); err != nil {
			return err
		}
		c.SetInput(calculator.FieldFrom, "409000")
		c.Blur()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "409,000.00", state.FromAmount)
	assert.Equal(t, "1,000.00", state.ToAmount)
	assert.Equal(t, 1000.0, state.RawTo)

	got, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestManager_DoReturnsCallbackError(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)
	id, _, err := m.Create(Options{})
	require.NoError(t, err)

	state, err := m.Do(id, func(c *calculator.Calculator) error {
		return c.SetMode("barter")
	})
	assert.True(t, errors.Is(err, calculator.ErrInvalidMode))
	assert.Equal(t, calculator.ModeCash, state.Mode)
}

func TestManager_UnknownSession(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)

	_, err := m.Get("missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))

	assert.True(t, errors.Is(m.Delete("missing"), ErrSessionNotFound))
}

func TestManager_Delete(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)
	id, _, err := m.Create(Options{})
	require.NoError(t, err)

	require.NoError(t, m.Delete(id))
	assert.Equal(t, 0, m.Len())

	_, err = m.Get(id)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestManager_Sweep(t *testing.T) {
	m, _ := newTestManager(10*time.Minute, 0)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	m.now = func() time.Time { return clock }

	idle, _, err := m.Create(Options{})
	require.NoError(t, err)
	active, _, err := m.Create(Options{})
	require.NoError(t, err)

	clock = start.Add(8 * time.Minute)
	_, err = m.Get(active)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Sweep(start.Add(11*time.Minute)))
	assert.Equal(t, 1, m.Len())

	_, err = m.Get(idle)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	_, err = m.Get(active)
	assert.NoError(t, err)
}

func TestManager_SweepDisabled(t *testing.T) {
	m, _ := newTestManager(0, 0)
	_, _, err := m.Create(Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, m.Sweep(time.Now().Add(time.Hour)))
	assert.Equal(t, 1, m.Len())
}

func TestManager_SessionKeepsItsTable(t *testing.T) {
	m, tables := newTestManager(time.Minute, 0)
	id, _, err := m.Create(Options{})
	require.NoError(t, err)

	tables.table = calculator.NewRateTable("AMD", []calculator.RateQuote{
		{ExternalID: "USD", CashSell: 500, CashlessSell: 500, CashBuy: 490, CashlessBuy: 490},
	})

	state, err := m.Do(id, func(c *calculator.Calculator) error {
		if err := c.Focus(calculator.FieldFrom); err != nil {
			return err
		}
		c.SetInput(calculator.FieldFrom, "4090")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, state.RawTo)

	fresh, _, err := m.Create(Options{})
	require.NoError(t, err)
	state, err = m.Do(fresh, func(c *calculator.Calculator) error {
		if err := c.Focus(calculator.FieldFrom); err != nil {
			return err
		}
		c.SetInput(calculator.FieldFrom, "5000")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, state.RawTo)
	assert.Equal(t, []string{"AMD"}, state.FromOptions)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m, _ := newTestManager(time.Minute, 0)
	id, _, err := m.Create(Options{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := m.Do(id, func(c *calculator.Calculator) error {
				if i%2 == 0 {
					return c.SetMode(calculator.ModeCashless)
				}
				return c.SetMode(calculator.ModeCash)
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	_, err = m.Get(id)
	assert.NoError(t, err)
}

func TestManager_DefaultTarget(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		opts       Options
		expectedTo string
	}{
		{name: "Configured target", target: "EUR", expectedTo: "EUR"},
		{name: "Explicit target wins", target: "EUR", opts: Options{To: "USD"}, expectedTo: "USD"},
		{name: "Target equals source", target: "EUR", opts: Options{From: "EUR"}, expectedTo: "USD"},
		{name: "Target not in table", target: "JPY", expectedTo: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(time.Minute, 0)
			m.WithDefaultTarget(tt.target)

			_, state, err := m.Create(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTo, state.To)
		})
	}
}
