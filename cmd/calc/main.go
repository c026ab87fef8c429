package main

import (
	"bufio"
	"fmt"
	"os"

	"exchange_calculator/internal/calculator"
	"exchange_calculator/internal/rates"

	"github.com/fatih/color"
)

func main() {
	table := calculator.NewRateTable(calculator.DefaultBase, rates.ToCalculatorQuotes(rates.DefaultQuotes()))

	repl, err := newREPL(table, os.Stdout)
	if err != nil {
		color.Red("failed to start calculator: %v", err)
		os.Exit(1)
	}

	repl.printHelp()
	repl.printState()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(repl.out, color.CyanString("> "))
		if !scanner.Scan() {
			break
		}
		if quit := repl.execute(scanner.Text()); quit {
			break
		}
	}
}
