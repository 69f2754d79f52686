package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/gitrdm/gocontinued/internal/parallel"
	"github.com/gitrdm/gocontinued/pkg/continued"
)

var rationalCmd = &cli.Command{
	Name:      "rational",
	Usage:     "Print the continued fraction and the digits of rational numbers",
	ArgsUsage: "<p/q> [p/q...]",
	Description: `Each argument is a fraction p/q, an integer or a finite decimal. Several
arguments are converted concurrently and printed in the order given.`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "digits",
			Usage: "maximum number of digit symbols to print",
			Value: 20,
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of conversions to run at once (0 = one per CPU)",
		},
	},
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.Errorf("expected at least one rational argument")
		}
		n := cctx.Int("digits")
		if n < 1 {
			return xerrors.Errorf("--digits must be positive, got %d", n)
		}
		base := cctx.Int("base")

		args := cctx.Args().Slice()
		reports := make([]string, len(args))
		err := parallel.Run(cctx.Context, cctx.Int("workers"), len(args), func(_ context.Context, i int) error {
			r, err := describeRational(args[i], base, n)
			if err != nil {
				return xerrors.Errorf("%s: %w", args[i], err)
			}
			reports[i] = r
			return nil
		})
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cctx.App.Writer, strings.Join(reports, "\n"))
		return err
	},
}

// describeRational renders the value, coefficients and at most n digit
// symbols of the rational s.
func describeRational(s string, base, n int) (string, error) {
	x, err := continued.ParseRational(s)
	if err != nil {
		return "", err
	}

	cs, err := continued.FormatCoefficients(continued.RationalToCoefficients(x), 0)
	if err != nil {
		return "", err
	}
	ds, err := continued.FormatDigits(continued.RationalToDigits(x, base), n+1)
	if err != nil {
		return "", err
	}
	if r := []rune(ds); len(r) > n {
		ds = string(r[:n]) + "…"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "value:        %s\n", x)
	fmt.Fprintf(&sb, "coefficients: %s\n", cs)
	fmt.Fprintf(&sb, "digits:       %s\n", ds)
	return sb.String(), nil
}
