package main

import (
	"bufio"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
	"golang.org/x/xerrors"

	"github.com/gitrdm/gocontinued/pkg/continued"
)

// lineCoefficients yields one coefficient per non-blank line of r. Each line
// is read only when the converter asks for the next coefficient.
func lineCoefficients(r io.Reader) continued.CoefficientStream {
	sc := bufio.NewScanner(r)
	line := 0
	return continued.Generate(func() (*big.Int, bool, error) {
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" {
				continue
			}
			a, ok := new(big.Int).SetString(text, 10)
			if !ok {
				return nil, false, xerrors.Errorf("line %d: %q is not an integer: %w", line, text, continued.ErrMalformedInput)
			}
			return a, true, nil
		}
		if err := sc.Err(); err != nil {
			return nil, false, xerrors.Errorf("reading coefficients: %w", err)
		}
		return nil, false, nil
	})
}

// argCoefficients yields the coefficients given on the command line.
func argCoefficients(args []string) continued.CoefficientStream {
	return lineCoefficients(strings.NewReader(strings.Join(args, "\n")))
}

// runeDigits yields one digit per character of r, skipping whitespace.
func runeDigits(r io.Reader, base int) continued.DigitStream {
	br := bufio.NewReader(r)
	pos := 0
	return continued.Generate(func() (continued.Digit, bool, error) {
		for {
			c, _, err := br.ReadRune()
			if err == io.EOF {
				return 0, false, nil
			}
			if err != nil {
				return 0, false, xerrors.Errorf("reading digits: %w", err)
			}
			pos++
			if unicode.IsSpace(c) {
				continue
			}
			d, err := continued.ParseDigit(c, base)
			if err != nil {
				return 0, false, xerrors.Errorf("character %d: %w", pos, err)
			}
			return d, true, nil
		}
	})
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
