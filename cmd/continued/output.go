package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/urfave/cli/v2"

	"github.com/gitrdm/gocontinued/pkg/continued"
)

// limited applies the global --limit flag to s.
func limited[T any](cctx *cli.Context, s continued.Stream[T]) continued.Stream[T] {
	if n := cctx.Int("limit"); n > 0 {
		return continued.Take(s, n)
	}
	return s
}

// printDigits writes each symbol of ds as soon as it is produced. On a
// terminal every symbol gets its own indented line; otherwise the digits
// form one continuous line.
func printDigits(cctx *cli.Context, ds continued.DigitStream) error {
	w := cctx.App.Writer
	pretty := isTerminal(w)
	var werr error
	err := continued.Each(limited(cctx, ds), func(d continued.Digit) bool {
		if pretty {
			_, werr = fmt.Fprintf(w, "\t%s\n", d)
		} else {
			_, werr = io.WriteString(w, d.String())
		}
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	if !pretty {
		_, _ = fmt.Fprintln(w)
	}
	return err
}

// printCoefficients writes one coefficient per line.
func printCoefficients(cctx *cli.Context, cs continued.CoefficientStream) error {
	w := cctx.App.Writer
	var werr error
	err := continued.Each(limited(cctx, cs), func(a *big.Int) bool {
		_, werr = fmt.Fprintln(w, a)
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	return err
}

// prompt tells an interactive user what the command is waiting for.
func prompt(cctx *cli.Context, what string) {
	if isTerminal(cctx.App.Reader) {
		_, _ = fmt.Fprintf(cctx.App.ErrWriter, "Enter %s, then Ctrl-D to finish:\n", what)
	}
}
