package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/calcviz/calcviz/eqcycle"
)

const invalidChoiceMsg = "Invalid choice. Please run the program again and select 1 or 2."

// selectDemo prints the demo menu, reads one line of input, and returns
// the chosen derivation. An unrecognized choice prints a message and
// returns (nil, nil): the program ends normally without opening a
// window. Only a read failure other than a plain EOF is an error.
func selectDemo(in io.Reader, out io.Writer) (*eqcycle.Cycler, error) {
	fmt.Fprintln(out, "Select a demonstration:")
	fmt.Fprintln(out, "1: Completing the Square")
	fmt.Fprintln(out, "2: Integration by Substitution")
	fmt.Fprint(out, "Enter your choice (1 or 2): ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read choice: %w", err)
	}

	switch strings.TrimSpace(line) {
	case "1":
		return eqcycle.CompletingSquare(), nil
	case "2":
		return eqcycle.IntegrationPattern(), nil
	default:
		fmt.Fprintln(out, invalidChoiceMsg)
		return nil, nil
	}
}
