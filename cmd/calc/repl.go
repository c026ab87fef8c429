package main

import (
	"fmt"
	"io"
	"strings"

	"exchange_calculator/internal/calculator"
	"exchange_calculator/internal/utils"

	"github.com/fatih/color"
)

type repl struct {
	calc *calculator.Calculator
	out  io.Writer

	label *color.Color
	value *color.Color
	warn  *color.Color
}

func newREPL(table *calculator.RateTable, out io.Writer) (*repl, error) {
	calc, err := calculator.New(table, calculator.Options{FormatNumber: utils.FormatGrouped})
	if err != nil {
		return nil, err
	}
	return &repl{
		calc:  calc,
		out:   out,
		label: color.New(color.FgHiBlack),
		value: color.New(color.FgGreen, color.Bold),
		warn:  color.New(color.FgYellow),
	}, nil
}

// Выполняем одну команду. Возвращает true для выхода.
func (r *repl) execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help":
		r.printHelp()
		return false
	case "show":
	case "rates":
		r.printRates()
		return false
	case "mode":
		if err = needArgs(args, 1); err == nil {
			err = r.calc.SetMode(calculator.Mode(strings.ToLower(args[0])))
		}
	case "from":
		if err = needArgs(args, 1); err == nil {
			err = r.calc.SetFromCurrency(strings.ToUpper(args[0]))
		}
	case "to":
		if err = needArgs(args, 1); err == nil {
			err = r.calc.SetToCurrency(strings.ToUpper(args[0]))
		}
	case "focus":
		if err = needArgs(args, 1); err == nil {
			err = r.calc.Focus(calculator.Field(strings.ToLower(args[0])))
		}
	case "type":
		field := r.calc.EditingField()
		if field == calculator.FieldNone {
			err = fmt.Errorf("no field focused, use: focus from|to")
			break
		}
		// Пустой текст очищает поле
		text := strings.Join(args, "")
		if !r.calc.SetInput(field, text) {
			r.warn.Fprintf(r.out, "input %q rejected: at most 12 integer and 2 fraction digits\n", text)
		}
	case "blur":
		r.calc.Blur()
	case "swap":
		r.calc.Swap()
	default:
		err = fmt.Errorf("unknown command %q, type help", cmd)
	}

	if err != nil {
		r.warn.Fprintln(r.out, err.Error())
		return false
	}
	r.printState()
	return false
}

func needArgs(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("expected %d argument(s)", n)
	}
	return nil
}

func (r *repl) printState() {
	s := r.calc.State()

	r.label.Fprint(r.out, "mode ")
	r.value.Fprintln(r.out, s.Mode)

	r.printSide("give", s.From, s.FromAmount, s.Editing == calculator.FieldFrom)
	r.printSide("get ", s.To, s.ToAmount, s.Editing == calculator.FieldTo)
}

func (r *repl) printSide(title, code, amount string, editing bool) {
	marker := " "
	if editing {
		marker = "*"
	}
	r.label.Fprintf(r.out, "%s %s ", marker, title)
	r.value.Fprintf(r.out, "%s %s\n", amount, code)
}

func (r *repl) printRates() {
	table := r.calc.Table()
	mode := r.calc.Mode()
	for _, code := range table.Currencies() {
		sell := table.Rate(code, mode, calculator.Sell)
		buy := table.Rate(code, mode, calculator.Buy)
		r.label.Fprintf(r.out, "%-4s ", code)
		fmt.Fprintf(r.out, "sell %s  buy %s\n", utils.FormatGrouped(sell), utils.FormatGrouped(buy))
	}
}

func (r *repl) printHelp() {
	r.label.Fprintln(r.out, "commands: mode cash|cashless, from CODE, to CODE, focus from|to, type TEXT, blur, swap, show, rates, help, quit")
}
