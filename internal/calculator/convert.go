package calculator

import "exchange_calculator/internal/utils"

// Считаем сумму в валюте "to" по сумме в валюте "from".
// Кросс-курс идёт через базовую валюту, промежуточная сумма не округляется.
func (t *RateTable) ConvertTo(amount float64, from, to string, mode Mode) float64 {
	var result float64
	switch {
	case from == t.base:
		result = amount / t.Rate(to, mode, Sell)
	case to == t.base:
		result = amount * t.Rate(from, mode, Buy)
	default:
		viaBase := amount * t.Rate(from, mode, Buy)
		result = viaBase / t.Rate(to, mode, Sell)
	}
	return utils.Round2(result)
}

// Обратный расчёт: сумма в валюте "from" по сумме в валюте "to"
func (t *RateTable) ConvertFrom(amount float64, from, to string, mode Mode) float64 {
	var result float64
	switch {
	case to == t.base:
		result = amount / t.Rate(from, mode, Buy)
	case from == t.base:
		result = amount * t.Rate(to, mode, Sell)
	default:
		viaBase := amount * t.Rate(to, mode, Buy)
		result = viaBase / t.Rate(from, mode, Sell)
	}
	return utils.Round2(result)
}
