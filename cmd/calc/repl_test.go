package main

import (
	"bytes"
	"testing"

	"exchange_calculator/internal/calculator"
	"exchange_calculator/internal/rates"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREPL(t *testing.T) (*repl, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	table := calculator.NewRateTable(calculator.DefaultBase, rates.ToCalculatorQuotes(rates.DefaultQuotes()))
	r, err := newREPL(table, &out)
	require.NoError(t, err)
	return r, &out
}

func TestREPL_Conversion(t *testing.T) {
	r, out := newTestREPL(t)

	assert.False(t, r.execute("focus from"))
	assert.False(t, r.execute("type 4,090"))
	assert.Contains(t, out.String(), "* give 4,090 AMD")
	assert.Contains(t, out.String(), "10.00 USD")

	out.Reset()
	assert.False(t, r.execute("mode cashless"))
	assert.Contains(t, out.String(), "10.03 USD")

	out.Reset()
	assert.False(t, r.execute("blur"))
	assert.Contains(t, out.String(), "4,090.00 AMD")

	out.Reset()
	assert.False(t, r.execute("swap"))
	assert.Equal(t, "USD", r.calc.FromCurrency())
	assert.Equal(t, "AMD", r.calc.ToCurrency())
}

func TestREPL_Errors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "Unknown command", line: "convert 10", expected: "unknown command"},
		{name: "Missing argument", line: "mode", expected: "expected 1 argument"},
		{name: "Invalid mode", line: "mode barter", expected: "invalid mode"},
		{name: "Unknown currency", line: "to JPY", expected: "unknown currency"},
		{name: "Type without focus", line: "type 10", expected: "no field focused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestREPL(t)
			assert.False(t, r.execute(tt.line))
			assert.Contains(t, out.String(), tt.expected)
		})
	}
}

func TestREPL_RejectedInput(t *testing.T) {
	r, out := newTestREPL(t)
	r.execute("focus to")

	out.Reset()
	r.execute("type 1234567890123")
	assert.Contains(t, out.String(), "rejected")
	assert.Equal(t, 0.0, r.calc.RawTo())
}

func TestREPL_RatesAndQuit(t *testing.T) {
	r, out := newTestREPL(t)

	r.execute("rates")
	assert.Contains(t, out.String(), "USD  sell 409.00  buy 402.00")

	assert.False(t, r.execute("   "))
	assert.True(t, r.execute("quit"))
}
