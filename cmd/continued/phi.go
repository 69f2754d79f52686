package main

import (
	"github.com/urfave/cli/v2"

	"github.com/gitrdm/gocontinued/pkg/continued"
)

var phiCmd = &cli.Command{
	Name:  "phi",
	Usage: "Print the golden ratio, forever unless --limit is set",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "digits",
			Usage: "print positional digits instead of coefficients",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.Bool("digits") {
			return printDigits(cctx, continued.CoefficientsToDigits(continued.Golden(), cctx.Int("base")))
		}
		return printCoefficients(cctx, continued.Golden())
	},
}
