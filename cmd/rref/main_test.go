// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lalg/matrix"
)

const fixture = `# 3x6 system
0, 3, -6, 6, 4, -5
3 -9 12 -9 6 15

3;-7;8;-5;8;9   # semicolons work too
`

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRunReducedForm(t *testing.T) {
	code, out, errOut := runCLI(t, fixture, "-verify")
	require.Equal(t, 0, code, errOut)
	require.Equal(t,
		"|  1.00,   0.00,  -2.00,   3.00,   0.00, -24.00|\n"+
			"|  0.00,   1.00,  -2.00,   2.00,   0.00,  -7.00|\n"+
			"|  0.00,   0.00,   0.00,   0.00,   1.00,   4.00|\n", out)
	require.Empty(t, errOut)
}

func TestRunEchelonOnly(t *testing.T) {
	code, out, _ := runCLI(t, fixture, "-echelon")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, "|  3.00,  -9.00,  12.00,  -9.00,   6.00,  15.00|\n"), out)
	require.True(t, strings.HasSuffix(out, "-0.67,  -2.67|\n"), out)
}

func TestRunTraceGoesToStderr(t *testing.T) {
	code, out, errOut := runCLI(t, "2 1\n-2 3\n", "-trace")
	require.Equal(t, 0, code)
	require.Equal(t, "|  1.00,   0.00|\n|  0.00,   1.00|\n", out)
	require.Contains(t, errOut, "trace output:")
	require.Contains(t, errOut, "matrix after zero reduction")
}

func TestRunReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0 2 4\n0 0 1 3\n"), 0o600))

	code, out, _ := runCLI(t, "", "-in", path)
	require.Equal(t, 0, code)
	require.Equal(t, "|  0.00,   0.00,   1.00,   0.00|\n|  0.00,   0.00,   0.00,   1.00|\n", out)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
		msg   string
	}{
		{"empty input", "# nothing\n\n", nil, 1, errEmptyInput.Error()},
		{"bad number", "1 2\n3 x\n", nil, 1, "line 2, value 2"},
		{"ragged rows", "1 2\n3\n", nil, 1, matrix.ErrDimensionMismatch.Error()},
		{"missing file", "", []string{"-in", filepath.Join(os.TempDir(), "no-such-rref-input")}, 1, "rref:"},
		{"unknown flag", "", []string{"-nope"}, 2, "flag provided but not defined"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.stdin, tc.args...)
			require.Equal(t, tc.code, code)
			require.Empty(t, out)
			require.Contains(t, errOut, tc.msg)
		})
	}
}

func TestReadMatrixSkipsComments(t *testing.T) {
	m, err := readMatrix(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 6, m.Cols())
	require.Equal(t, []float64{3, -7, 8, -5, 8, 9}, matrix.CopyVector(matrix.Row(m, 2)).RawData())
}
