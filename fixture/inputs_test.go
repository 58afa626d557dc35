package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellfix/fixture"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadInputs(t *testing.T) {
	tests := []struct {
		name string
		body string
		want fixture.Inputs
	}{
		{
			name: "full override",
			body: "matrix_multiply:\n  a: [[1, 0], [0, 1]]\n  b: [[2], [3]]\nfibonacci:\n  n: 20\ngreet:\n  count: 1\n",
			want: fixture.Inputs{
				MatrixMultiply: fixture.MatrixInputs{
					A: [][]float64{{1, 0}, {0, 1}},
					B: [][]float64{{2}, {3}},
				},
				Fibonacci: fixture.FibonacciInputs{N: 20},
				Greet:     fixture.GreetInputs{Count: 1},
			},
		},
		{
			name: "fibonacci only keeps sample matrices",
			body: "fibonacci:\n  n: 0\n",
			want: func() fixture.Inputs {
				in := fixture.DefaultInputs()
				in.Fibonacci.N = 0
				return in
			}(),
		},
		{
			name: "single operand",
			body: "matrix_multiply:\n  b: [[1, 1], [1, 1]]\n",
			want: func() fixture.Inputs {
				in := fixture.DefaultInputs()
				in.MatrixMultiply.B = [][]float64{{1, 1}, {1, 1}}
				return in
			}(),
		},
		{
			name: "greet count zero",
			body: "greet:\n  count: 0\n",
			want: func() fixture.Inputs {
				in := fixture.DefaultInputs()
				in.Greet.Count = 0
				return in
			}(),
		},
		{
			name: "empty file",
			body: "",
			want: fixture.DefaultInputs(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fixture.LoadInputs(writeFile(t, tc.body))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("LoadInputs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadInputs_Defaults(t *testing.T) {
	got, err := fixture.LoadInputs("")
	require.NoError(t, err)
	require.Equal(t, fixture.DefaultInputs(), got)

	got, err = fixture.LoadInputs(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, fixture.DefaultInputs(), got)
}

func TestLoadInputs_Malformed(t *testing.T) {
	_, err := fixture.LoadInputs(writeFile(t, "fibonacci: [not, a, map\n"))
	require.ErrorContains(t, err, "parse inputs")
}

func TestParseMatrix(t *testing.T) {
	rows, err := fixture.ParseMatrix("[[1, 2], [3, 4.5]]")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, rows)

	_, err = fixture.ParseMatrix("[[1, x]]")
	require.Error(t, err)
}
