// Package main is the command-line driver for the continued fraction
// converters. It reads coefficients or digits from arguments or standard
// input and prints whatever the converters yield, as soon as they yield it.
package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/gitrdm/gocontinued/pkg/continued"
)

var log = logging.Logger("continued-cli")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
		return
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "continued",
		Usage:   "Convert between continued fractions and positional digits",
		Version: continued.GetVersion(),
		Commands: []*cli.Command{
			digitsCmd,
			coefficientsCmd,
			phiCmd,
			rationalCmd,
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "base",
				Aliases: []string{"b"},
				EnvVars: []string{"CONTINUED_BASE"},
				Value:   10,
				Usage:   "positional base for digits (2-36 for text input)",
			},
			&cli.IntFlag{
				Name:    "limit",
				EnvVars: []string{"CONTINUED_LIMIT"},
				Value:   0,
				Usage:   "stop after this many output symbols (0 = until the input ends)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"CONTINUED_LOG_LEVEL"},
				Value:   "info",
			},
		},
		Before: func(cctx *cli.Context) error {
			for _, name := range []string{"continued", "continued-cli"} {
				if err := logging.SetLogLevel(name, cctx.String("log-level")); err != nil {
					return xerrors.Errorf("setting log level of %s: %w", name, err)
				}
			}
			return nil
		},
	}
}
