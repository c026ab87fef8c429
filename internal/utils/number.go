package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// ErrNotANumber возвращается, когда строку нельзя превратить в конечное число
var ErrNotANumber = errors.New("not a number")

// Округляем до двух знаков после запятой по точному двоичному значению числа,
// половина от нуля: 2.675 хранится как 2.67499... и даёт 2.67, 0.125 даёт 0.13.
// Бесконечность и NaN возвращаются как есть: деление на нулевой курс не защищается.
func Round2(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	rounded, _ := decimal.NewFromFloatWithExponent(value, -2).Float64()
	return rounded
}

// Разбираем число, убирая разделители разрядов (запятые)
func ParseNumber(s string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" {
		return 0, ErrNotANumber
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrNotANumber
	}

	return value, nil
}

// Число без форматирования, кратчайшее представление
func FormatPlain(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Число с разделителями разрядов и двумя знаками после запятой, например 4,090.00
func FormatGrouped(value float64) string {
	ac := accounting.Accounting{Symbol: "", Precision: 2, Thousand: ",", Decimal: "."}
	return ac.FormatMoneyFloat64(value)
}
