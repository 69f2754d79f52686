package main

import (
	"github.com/urfave/cli/v2"

	"github.com/gitrdm/gocontinued/pkg/continued"
)

var digitsCmd = &cli.Command{
	Name:      "digits",
	Usage:     "Convert continued fraction coefficients into positional digits",
	ArgsUsage: "[coefficient...]",
	Description: `Coefficients are taken from the arguments, or else read from standard
input one per line. Each digit is printed as soon as the coefficients read so
far prove it, so an unbounded input produces an unbounded output.`,
	Action: func(cctx *cli.Context) error {
		var cs continued.CoefficientStream
		if cctx.Args().Present() {
			cs = argCoefficients(cctx.Args().Slice())
		} else {
			prompt(cctx, "coefficients one per line")
			cs = lineCoefficients(cctx.App.Reader)
		}

		dc := continued.CoefficientsToDigits(cs, cctx.Int("base"))
		err := printDigits(cctx, dc)
		log.Debugw("digits done", "coefficients", dc.Consumed())
		return err
	},
}
