package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/algokit/heap"
	"github.com/katalvlaran/algokit/queue"
	"github.com/katalvlaran/algokit/stack"
)

func (r *runner) heapCommand() *cli.Command {
	return &cli.Command{
		Name:      "heap",
		Usage:     "push integers into a heap and pop them in priority order; put -- before negative values",
		ArgsUsage: "[--] [ints...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "max", Usage: "use a max-heap instead of a min-heap"},
		},
		Action: func(c *cli.Context) error {
			vals, err := intArgs(c.Args().Slice(), c.App.Reader)
			if err != nil {
				return errors.Wrap(err, "heap")
			}
			var h *heap.Heap[int]
			if c.Bool("max") {
				h = heap.FromSliceMax(vals)
			} else {
				h = heap.FromSliceMin(vals)
			}
			r.log.Debug("heap built", "kind", h.Kind().String(), "n", h.Len())

			out := make([]int, 0, h.Len())
			for h.Len() > 0 {
				v, err := h.Pop()
				if err != nil {
					return errors.Wrap(err, "heap")
				}
				out = append(out, v)
			}
			fmt.Fprintln(c.App.Writer, joinInts(out))

			return nil
		},
	}
}

func (r *runner) stackCommand() *cli.Command {
	return &cli.Command{
		Name:      "stack",
		Usage:     "push values onto a stack and pop them (LIFO)",
		ArgsUsage: "[values...]",
		Action: func(c *cli.Context) error {
			s := stack.From(c.Args().Slice()...)
			r.log.Debug("stack built", "n", s.Len())
			var out []string
			for !s.IsEmpty() {
				v, err := s.Pop()
				if err != nil {
					return errors.Wrap(err, "stack")
				}
				out = append(out, v)
			}
			printStrings(c, out)

			return nil
		},
	}
}

func (r *runner) queueCommand() *cli.Command {
	return &cli.Command{
		Name:      "queue",
		Usage:     "enqueue values and dequeue them (FIFO)",
		ArgsUsage: "[values...]",
		Action: func(c *cli.Context) error {
			q := queue.From(c.Args().Slice()...)
			r.log.Debug("queue built", "n", q.Len())
			var out []string
			for !q.IsEmpty() {
				v, err := q.Dequeue()
				if err != nil {
					return errors.Wrap(err, "queue")
				}
				out = append(out, v)
			}
			printStrings(c, out)

			return nil
		},
	}
}

func printStrings(c *cli.Context, vals []string) {
	for i, v := range vals {
		if i > 0 {
			fmt.Fprint(c.App.Writer, " ")
		}
		fmt.Fprint(c.App.Writer, v)
	}
	fmt.Fprintln(c.App.Writer)
}
