package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// splitValues accepts whitespace or comma separated tokens.
func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// parseInts converts every token in args to an int.
func parseInts(args []string) ([]int, error) {
	var out []int
	for _, a := range args {
		for _, tok := range splitValues(a) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing %q", tok)
			}
			out = append(out, n)
		}
	}

	return out, nil
}

// readInts parses integers from r, one or more per line.
func readInts(r io.Reader) ([]int, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	return parseInts(lines)
}

// intArgs returns the ints given as arguments, or read from in when there
// are none.
func intArgs(args []string, in io.Reader) ([]int, error) {
	if len(args) > 0 {
		return parseInts(args)
	}

	return readInts(in)
}

// argInt parses the i-th positional argument as an int. Range checks are
// left to the operation that consumes it.
func argInt(args []string, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, errors.Newf("missing %s argument", name)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %s", name)
	}

	return n, nil
}

// joinInts renders values separated by single spaces.
func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
