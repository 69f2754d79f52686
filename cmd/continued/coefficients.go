package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gitrdm/gocontinued/pkg/continued"
)

var coefficientsCmd = &cli.Command{
	Name:      "coefficients",
	Usage:     "Convert positional digits into continued fraction coefficients",
	ArgsUsage: "[digits]",
	Description: `The digits are taken from the arguments, or else read from standard
input character by character. Whitespace is ignored, '.' is the radix point
and a leading '-' makes the value negative. Each coefficient is printed on
its own line as soon as the digits read so far prove it.`,
	Action: func(cctx *cli.Context) error {
		base := cctx.Int("base")

		var ds continued.DigitStream
		if cctx.Args().Present() {
			ds = continued.ParseDigits(strings.Join(cctx.Args().Slice(), ""), base)
		} else {
			prompt(cctx, "digits")
			ds = runeDigits(cctx.App.Reader, base)
		}

		cc := continued.DigitsToCoefficients(ds, base)
		err := printCoefficients(cctx, cc)
		log.Debugw("coefficients done", "digits", cc.Consumed(), "coefficients", cc.Emitted())
		return err
	},
}
