package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"exchange_calculator/internal/utils"
)

const (
	maxIntegerDigits  = 12
	maxFractionDigits = 2
)

// Поле ввода суммы
type Field string

const (
	FieldNone Field = ""
	FieldFrom Field = "from"
	FieldTo   Field = "to"
)

func (f Field) Valid() bool {
	return f == FieldFrom || f == FieldTo
}

// Разбираем поле ввода из строки
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return FieldNone, fmt.Errorf("%w: %q", ErrInvalidField, s)
	}
	return f, nil
}

// Options configure a calculator. Zero values fall back to defaults.
type Options struct {
	// Форматирование суммы для отображения, по умолчанию utils.FormatPlain
	FormatNumber func(float64) string
	// Разбор введённой строки, по умолчанию utils.ParseNumber
	ParseNumber func(string) (float64, error)

	Mode Mode
	From string
	To   string

	// Вызывается один раз после каждого изменения состояния
	OnChange func(State)
}

// Снимок состояния калькулятора для отображения
type State struct {
	Mode        Mode
	From        string
	To          string
	FromOptions []string
	ToOptions   []string
	FromAmount  string
	ToAmount    string
	RawFrom     float64
	RawTo       float64
	LastEdited  Field
	Editing     Field
}

// Calculator holds the state of one conversion session.
// It is not safe for concurrent use; each host owns its calculator exclusively.
type Calculator struct {
	table    *RateTable
	format   func(float64) string
	parse    func(string) (float64, error)
	onChange func(State)

	mode       Mode
	from       string
	to         string
	rawFrom    float64
	rawTo      float64
	lastEdited Field
	editing    Field
	inputFrom  string
	inputTo    string
}

// Создаём калькулятор поверх таблицы курсов
func New(table *RateTable, opts Options) (*Calculator, error) {
	c := &Calculator{
		table:      table,
		format:     opts.FormatNumber,
		parse:      opts.ParseNumber,
		onChange:   opts.OnChange,
		mode:       ModeCash,
		from:       table.Base(),
		lastEdited: FieldFrom,
		editing:    FieldNone,
	}
	if c.format == nil {
		c.format = utils.FormatPlain
	}
	if c.parse == nil {
		c.parse = utils.ParseNumber
	}

	if opts.Mode != "" {
		if !opts.Mode.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMode, opts.Mode)
		}
		c.mode = opts.Mode
	}

	if opts.From != "" {
		if !table.Has(opts.From) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, opts.From)
		}
		c.from = opts.From
	}

	if opts.To != "" {
		if !table.Has(opts.To) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, opts.To)
		}
		c.to = opts.To
	} else {
		c.to = defaultTarget(table, c.from)
	}

	return c, nil
}

// USD, если есть, иначе первая валюта, отличная от выбранной
func defaultTarget(table *RateTable, from string) string {
	if from != "USD" && table.Has("USD") {
		return "USD"
	}
	for _, code := range table.codes {
		if code != from {
			return code
		}
	}
	return from
}

func (c *Calculator) Table() *RateTable {
	return c.table
}

func (c *Calculator) Mode() Mode {
	return c.mode
}

func (c *Calculator) FromCurrency() string {
	return c.from
}

func (c *Calculator) ToCurrency() string {
	return c.to
}

func (c *Calculator) RawFrom() float64 {
	return c.rawFrom
}

func (c *Calculator) RawTo() float64 {
	return c.rawTo
}

func (c *Calculator) LastEdited() Field {
	return c.lastEdited
}

func (c *Calculator) EditingField() Field {
	return c.editing
}

// Варианты для "from": все валюты, кроме выбранной в "to"
func (c *Calculator) FromOptions() []string {
	return c.optionsExcept(c.to)
}

// Варианты для "to": все валюты, кроме выбранной в "from"
func (c *Calculator) ToOptions() []string {
	return c.optionsExcept(c.from)
}

func (c *Calculator) optionsExcept(code string) []string {
	options := make([]string, 0, len(c.table.codes))
	for _, candidate := range c.table.codes {
		if candidate != code {
			options = append(options, candidate)
		}
	}
	return options
}

// SetMode switches the rate schedule and re-derives the dependent amount.
func (c *Calculator) SetMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if mode == c.mode {
		return nil
	}
	c.mode = mode
	c.recalculate()
	c.notify()
	return nil
}

func (c *Calculator) SetFromCurrency(code string) error {
	return c.SetCurrencies(code, c.to)
}

func (c *Calculator) SetToCurrency(code string) error {
	return c.SetCurrencies(c.from, code)
}

// SetCurrencies applies both selections as one change: at most one recalculation.
func (c *Calculator) SetCurrencies(from, to string) error {
	if !c.table.Has(from) {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}
	if !c.table.Has(to) {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, to)
	}
	if from == c.from && to == c.to {
		return nil
	}
	c.from, c.to = from, to
	c.recalculate()
	c.notify()
	return nil
}

// Focus starts editing field and seeds its buffer from the stored amount:
// empty for zero, a bare integer for whole amounts, two decimals otherwise.
func (c *Calculator) Focus(field Field) error {
	if !field.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	c.editing = field
	c.lastEdited = field
	if field == FieldFrom {
		c.inputFrom = seedInput(c.rawFrom)
	} else {
		c.inputTo = seedInput(c.rawTo)
	}
	c.notify()
	return nil
}

func seedInput(value float64) string {
	if value == 0 {
		return ""
	}
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// Снимаем фокус: оба буфера очищаются, отображение возвращается к форматированным суммам
func (c *Calculator) Blur() {
	c.editing = FieldNone
	c.inputFrom = ""
	c.inputTo = ""
	c.notify()
}

// SetInput applies a keystroke to the focused field. It reports whether the text
// was taken into the buffer; rejected text leaves the state untouched.
// Text that passes validation but does not parse only updates the buffer.
func (c *Calculator) SetInput(field Field, text string) bool {
	if !field.Valid() || c.editing != field {
		return false
	}
	if !validInput(text) {
		return false
	}

	if field == FieldFrom {
		c.inputFrom = text
	} else {
		c.inputTo = text
	}

	// NaN от пользовательского парсера тоже считается ошибкой разбора
	value, err := c.parse(text)
	if err != nil || math.IsNaN(value) {
		c.notify()
		return true
	}

	c.lastEdited = field
	if field == FieldFrom {
		c.rawFrom = value
		c.calculateRawTo()
	} else {
		c.rawTo = value
		c.calculateRawFrom()
	}
	c.notify()
	return true
}

// Не больше 12 символов в целой части и 2 в дробной
func validInput(text string) bool {
	parts := strings.Split(text, ".")
	if utf8.RuneCountInString(parts[0]) > maxIntegerDigits {
		return false
	}
	if len(parts) > 1 && utf8.RuneCountInString(parts[1]) > maxFractionDigits {
		return false
	}
	return true
}

// DisplayValue returns the raw buffer while field is being edited,
// otherwise the formatted stored amount.
func (c *Calculator) DisplayValue(field Field) string {
	switch field {
	case FieldFrom:
		if c.editing == FieldFrom {
			return c.inputFrom
		}
		return c.format(c.rawFrom)
	case FieldTo:
		if c.editing == FieldTo {
			return c.inputTo
		}
		return c.format(c.rawTo)
	default:
		return ""
	}
}

// Swap exchanges currencies and amounts in one step, drops focus
// and always re-derives "to" from the new "from".
func (c *Calculator) Swap() {
	c.from, c.to = c.to, c.from
	c.rawFrom, c.rawTo = c.rawTo, c.rawFrom
	c.editing = FieldNone
	c.lastEdited = FieldFrom
	c.calculateRawTo()
	c.notify()
}

// Сохраняем намерение пользователя: пересчитываем сторону, которую он не редактировал
func (c *Calculator) recalculate() {
	if c.lastEdited == FieldFrom {
		c.calculateRawTo()
	} else {
		c.calculateRawFrom()
	}
}

func (c *Calculator) calculateRawTo() {
	c.rawTo = c.table.ConvertTo(c.rawFrom, c.from, c.to, c.mode)
}

func (c *Calculator) calculateRawFrom() {
	c.rawFrom = c.table.ConvertFrom(c.rawTo, c.from, c.to, c.mode)
}

// Текущее состояние
func (c *Calculator) State() State {
	return State{
		Mode:        c.mode,
		From:        c.from,
		To:          c.to,
		FromOptions: c.FromOptions(),
		ToOptions:   c.ToOptions(),
		FromAmount:  c.DisplayValue(FieldFrom),
		ToAmount:    c.DisplayValue(FieldTo),
		RawFrom:     c.rawFrom,
		RawTo:       c.rawTo,
		LastEdited:  c.lastEdited,
		Editing:     c.editing,
	}
}

func (c *Calculator) notify() {
	if c.onChange != nil {
		c.onChange(c.State())
	}
}
