package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/algokit/matrix"
)

// matrixFlags are shared by every matrix subcommand.
func matrixFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "rows", Usage: "number of rows (default from config)"},
		&cli.IntFlag{Name: "cols", Usage: "number of columns (default from config)"},
		&cli.StringFlag{
			Name:    "values",
			Aliases: []string{"v"},
			Usage:   "row-major cell values, comma separated (default counts from 0)",
		},
	}
}

// shape resolves --rows and --cols against the configured defaults.
func (r *runner) shape(c *cli.Context) (int, int) {
	rows, cols := r.cfg.Matrix.Rows, r.cfg.Matrix.Cols
	if c.IsSet("rows") {
		rows = c.Int("rows")
	}
	if c.IsSet("cols") {
		cols = c.Int("cols")
	}

	return rows, cols
}

// build returns the matrix described by the shared flags.
func (r *runner) build(c *cli.Context) (*matrix.Dense[int], error) {
	rows, cols := r.shape(c)
	if !c.IsSet("values") {
		return matrix.FromProducer(rows, cols, matrix.Count(0))
	}
	vals, err := parseInts([]string{c.String("values")})
	if err != nil {
		return nil, err
	}

	return matrix.FromSlice(rows, cols, vals)
}

// matrixAction wraps fn with matrix construction and error context.
func (r *runner) matrixAction(name string, fn func(c *cli.Context, m *matrix.Dense[int]) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		m, err := r.build(c)
		if err != nil {
			return errors.Wrapf(err, "matrix %s", name)
		}
		r.log.Debug("matrix built", "op", name, "rows", m.Rows(), "cols", m.Cols())
		if err := fn(c, m); err != nil {
			return errors.Wrapf(err, "matrix %s", name)
		}

		return nil
	}
}

func (r *runner) matrixCommand() *cli.Command {
	sub := func(name, usage, argsUsage string, fn func(c *cli.Context, m *matrix.Dense[int]) error) *cli.Command {
		return &cli.Command{
			Name:      name,
			Usage:     usage,
			ArgsUsage: argsUsage,
			Flags:     matrixFlags(),
			Action:    r.matrixAction(name, fn),
		}
	}

	return &cli.Command{
		Name:  "matrix",
		Usage: "build a dense row-major matrix and operate on it",
		Subcommands: []*cli.Command{
			sub("show", "print the matrix", "", func(c *cli.Context, m *matrix.Dense[int]) error {
				fmt.Fprint(c.App.Writer, m.String())
				return nil
			}),
			sub("transpose", "print the transpose", "", func(c *cli.Context, m *matrix.Dense[int]) error {
				fmt.Fprint(c.App.Writer, m.Transpose().String())
				return nil
			}),
			{
				Name:  "identity",
				Usage: "print the identity matrix of size --rows",
				Flags: matrixFlags(),
				Action: func(c *cli.Context) error {
					size, _ := r.shape(c)
					id, err := matrix.Identity[int](size)
					if err != nil {
						return errors.Wrap(err, "matrix identity")
					}
					fmt.Fprint(c.App.Writer, id.String())
					return nil
				},
			},
			sub("swap-rows", "swap two rows and print the result", "A B", func(c *cli.Context, m *matrix.Dense[int]) error {
				return swap(c, m, m.SwapRows)
			}),
			sub("swap-cols", "swap two columns and print the result", "A B", func(c *cli.Context, m *matrix.Dense[int]) error {
				return swap(c, m, m.SwapCols)
			}),
			sub("sum", "print the sum of all cells", "", func(c *cli.Context, m *matrix.Dense[int]) error {
				fmt.Fprintln(c.App.Writer, matrix.Sum(m))
				return nil
			}),
			{
				Name:      "scale",
				Usage:     "multiply every cell by FACTOR and print the result",
				ArgsUsage: "[--] FACTOR",
				Flags:     matrixFlags(),
				Action: r.matrixAction("scale", func(c *cli.Context, m *matrix.Dense[int]) error {
					k, err := argInt(c.Args().Slice(), 0, "FACTOR")
					if err != nil {
						return err
					}
					matrix.Scale(m, k)
					fmt.Fprint(c.App.Writer, m.String())
					return nil
				}),
			},
			sub("row", "print one row", "ROW", func(c *cli.Context, m *matrix.Dense[int]) error {
				i, err := argInt(c.Args().Slice(), 0, "ROW")
				if err != nil {
					return err
				}
				v, err := m.Row(i)
				if err != nil {
					return err
				}
				var out []int
				for _, x := range v.All() {
					out = append(out, x)
				}
				fmt.Fprintln(c.App.Writer, joinInts(out))
				return nil
			}),
			sub("col", "print one column", "COL", func(c *cli.Context, m *matrix.Dense[int]) error {
				j, err := argInt(c.Args().Slice(), 0, "COL")
				if err != nil {
					return err
				}
				v, err := m.Col(j)
				if err != nil {
					return err
				}
				var out []int
				for _, x := range v.All() {
					out = append(out, x)
				}
				fmt.Fprintln(c.App.Writer, joinInts(out))
				return nil
			}),
		},
	}
}

// swap reads two index arguments, applies fn and prints the matrix.
func swap(c *cli.Context, m *matrix.Dense[int], fn func(a, b int) error) error {
	a, err := argInt(c.Args().Slice(), 0, "A")
	if err != nil {
		return err
	}
	b, err := argInt(c.Args().Slice(), 1, "B")
	if err != nil {
		return err
	}
	if err := fn(a, b); err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, m.String())

	return nil
}
