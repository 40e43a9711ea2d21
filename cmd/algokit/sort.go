package main

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/algokit/sorting"
)

func (r *runner) sortCommand() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "sort integers given as arguments or on stdin; put -- before negative values",
		ArgsUsage: "[--] [ints...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "insertion, bubble, merge, quick or heap",
			},
			&cli.BoolFlag{
				Name:    "desc",
				Aliases: []string{"d"},
				Usage:   "sort in descending order",
			},
		},
		Action: func(c *cli.Context) error {
			algo := r.cfg.Algorithm()
			if c.IsSet("algorithm") {
				a, err := sorting.ParseAlgorithm(c.String("algorithm"))
				if err != nil {
					return err
				}
				algo = a
			}
			desc := r.cfg.Sort.Descending
			if c.IsSet("desc") {
				desc = c.Bool("desc")
			}

			vals, err := intArgs(c.Args().Slice(), c.App.Reader)
			if err != nil {
				return errors.Wrap(err, "sort")
			}
			start := time.Now()
			if err := sorting.Sort(vals, sorting.WithAlgorithm(algo), sorting.WithOrder(!desc)); err != nil {
				return errors.Wrap(err, "sort")
			}
			r.log.Debug("sorted", "algorithm", algo.String(), "descending", desc, "n", len(vals), "elapsed", time.Since(start))
			fmt.Fprintln(c.App.Writer, joinInts(vals))

			return nil
		},
	}
}
