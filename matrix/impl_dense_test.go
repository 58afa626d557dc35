// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cellfix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m := mustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetRejectsNonFinite checks the default numeric policy on Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m := mustDense(t, 1, 1)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestStringOutput checks that String() formats the matrix row by row.
func TestStringOutput(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4.5}})

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestNewDenseFromRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		opts    []matrix.Option
		wantErr error
	}{
		{"2x3", [][]float64{{1, 2, 3}, {4, 5, 6}}, nil, nil},
		{"1x1", [][]float64{{42}}, nil, nil},
		{"nil rows", nil, nil, matrix.ErrInvalidDimensions},
		{"empty first row", [][]float64{{}}, nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, nil, matrix.ErrBadShape},
		{"NaN rejected", [][]float64{{1, math.NaN()}}, nil, matrix.ErrNaNInf},
		{"Inf rejected explicitly", [][]float64{{math.Inf(1)}}, []matrix.Option{matrix.WithValidateNaNInf()}, matrix.ErrNaNInf},
		{"NaN allowed", [][]float64{{1, math.NaN()}}, []matrix.Option{matrix.WithNoValidateNaNInf()}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFromRows(tc.rows, tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)

				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.rows), m.Rows())
			require.Equal(t, len(tc.rows[0]), m.Cols())
		})
	}
}

// TestFromRowsToRowsNoAliasing checks both directions copy their data.
func TestFromRowsToRowsNoAliasing(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := mustRows(t, src)

	src[0][0] = 99 // mutate the input after ingestion
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	out := m.ToRows()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, out)
	out[1][1] = -1 // mutate the export
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

func TestDoEarlyStop(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 2
	})
	require.Equal(t, []float64{1, 2}, seen)
}

func TestApply(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, [][]float64{{10, 20}, {30, 40}}, m.ToRows())

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 0 {
			return math.NaN()
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
