// SPDX-License-Identifier: MIT

// Command rref reads a matrix and prints its reduced row echelon form.
//
// Input is one matrix row per line. Values are separated by commas,
// semicolons or whitespace; blank lines and text after '#' are ignored.
//
// Usage:
//
//	rref [-in file] [-echelon] [-trace] [-verify]
//
// Flags:
//
//	-in       read from file instead of stdin
//	-echelon  stop at echelon form
//	-trace    print every reduction step to stderr
//	-verify   reduce the result again and report drift beyond 1e-9
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lalg/matrix"
	"github.com/katalvlaran/lalg/trace"
)

const verifyTol = 1e-9

var errEmptyInput = errors.New("rref: no matrix rows in input")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rref", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "input file (default stdin)")
	echelonOnly := fs.Bool("echelon", false, "stop at echelon form")
	traceSteps := fs.Bool("trace", false, "print every reduction step to stderr")
	verify := fs.Bool("verify", false, "reduce the result again and report drift")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	src := stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintln(stderr, "rref:", err)
			return 1
		}
		defer f.Close()
		src = f
	}

	m, err := readMatrix(src)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var opts []matrix.Option
	if *traceSteps {
		opts = append(opts, matrix.WithTracer(trace.New(stderr, trace.WithDevelopmentMode(true))))
	}
	if err := reduce(m, *echelonOnly, opts); err != nil {
		fmt.Fprintln(stderr, "rref:", err)
		return 1
	}
	fmt.Fprint(stdout, m)

	if *verify && !*echelonOnly {
		again := m.Clone()
		if err := reduce(again, false, nil); err != nil {
			fmt.Fprintln(stderr, "rref: verify:", err)
			return 1
		}
		if !matrix.EqualApproxMatrix(m, again, verifyTol) {
			fmt.Fprintf(stderr, "rref: verify: result moved on a second reduction:\n%s", again)
			return 1
		}
	}

	return 0
}

// reduce runs the requested reduction, turning a matrix fault into an error.
func reduce(m *matrix.Dense, echelonOnly bool, opts []matrix.Option) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	if echelonOnly {
		matrix.ToEchelonForm(m, opts...)
	} else {
		matrix.ToReducedEchelonForm(m, opts...)
	}

	return nil
}

// readMatrix parses rows of numbers from r.
func readMatrix(r io.Reader) (*matrix.Dense, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, isSeparator)
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("rref: line %d, value %d: %w", line, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rref: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, errEmptyInput
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("rref: %w", err)
	}

	return m, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r'
}
