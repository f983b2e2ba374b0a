package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/till"
	"github.com/shopspring/decimal"
)

// errCancelled is returned when the operator leaves a required answer empty.
var errCancelled = errors.New("cancelled")

func errInvalidNumber(in string) error {
	return fmt.Errorf("%w: %q is not a whole number", till.ErrValidation, in)
}

func errInvalidAmount(in string) error {
	return fmt.Errorf("%w: %q is not an amount", till.ErrValidation, in)
}

// linePrompter reads one answer per line.
type linePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewScanner(in), out: out}
}

// Prompt prints label and returns the next line, trimmed. It returns io.EOF
// when the input is exhausted.
func (p *linePrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// text asks for a non-empty answer.
func text(p till.Prompter, label string) (string, error) {
	in, err := p.Prompt(label)
	if err != nil {
		return "", err
	}
	if in == "" {
		return "", errCancelled
	}
	return in, nil
}

// integer asks for a whole number.
func integer(p till.Prompter, label string) (int, error) {
	in, err := text(p, label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(in)
	if err != nil {
		return 0, errInvalidNumber(in)
	}
	return n, nil
}

// amount asks for a decimal number.
func amount(p till.Prompter, label string) (decimal.Decimal, error) {
	in, err := text(p, label)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(in)
	if err != nil {
		return decimal.Zero, errInvalidAmount(in)
	}
	return v, nil
}

// confirm asks a yes/no question. Anything but yes is no.
func confirm(p till.Prompter, label string) (bool, error) {
	in, err := p.Prompt(label + " (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(in) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	}
	return false, nil
}
