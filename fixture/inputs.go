package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// MatrixInputs are the two operands of the matrix-multiply fixture.
type MatrixInputs struct {
	A [][]float64 `yaml:"a"`
	B [][]float64 `yaml:"b"`
}

// FibonacciInputs is the index of the Fibonacci fixture.
type FibonacciInputs struct {
	N int `yaml:"n"`
}

// GreetInputs is the number of users the greet fixture salutes.
type GreetInputs struct {
	Count int `yaml:"count"`
}

// Inputs holds the inputs of every fixture.
type Inputs struct {
	MatrixMultiply MatrixInputs    `yaml:"matrix_multiply"`
	Fibonacci      FibonacciInputs `yaml:"fibonacci"`
	Greet          GreetInputs     `yaml:"greet"`
}

// DefaultInputs returns the literal sample inputs.
func DefaultInputs() Inputs {
	return Inputs{
		MatrixMultiply: MatrixInputs{
			A: [][]float64{{1, 2}, {3, 4}},
			B: [][]float64{{5, 6}, {7, 8}},
		},
		Fibonacci: FibonacciInputs{N: 10},
		Greet:     GreetInputs{Count: 3},
	}
}

// LoadInputs reads inputs from a YAML file, overlaying DefaultInputs.
// An empty path or a missing file yields the defaults.
func LoadInputs(path string) (Inputs, error) {
	in := DefaultInputs()
	if path == "" {
		return in, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return in, nil
		}
		return Inputs{}, fmt.Errorf("read inputs %s: %w", path, err)
	}

	if err := ParseInputs(data, &in); err != nil {
		return Inputs{}, fmt.Errorf("parse inputs %s: %w", path, err)
	}

	return in, nil
}

// ParseInputs decodes YAML into in. Keys absent from data keep their
// current values; a matrix given in data replaces the whole matrix.
func ParseInputs(data []byte, in *Inputs) error {
	var raw struct {
		MatrixMultiply *struct {
			A [][]float64 `yaml:"a"`
			B [][]float64 `yaml:"b"`
		} `yaml:"matrix_multiply"`
		Fibonacci *struct {
			N *int `yaml:"n"`
		} `yaml:"fibonacci"`
		Greet *struct {
			Count *int `yaml:"count"`
		} `yaml:"greet"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	if mm := raw.MatrixMultiply; mm != nil {
		if mm.A != nil {
			in.MatrixMultiply.A = mm.A
		}
		if mm.B != nil {
			in.MatrixMultiply.B = mm.B
		}
	}
	if f := raw.Fibonacci; f != nil && f.N != nil {
		in.Fibonacci.N = *f.N
	}
	if g := raw.Greet; g != nil && g.Count != nil {
		in.Greet.Count = *g.Count
	}

	return nil
}

// ParseMatrix decodes a YAML flow sequence such as "[[1, 2], [3, 4]]".
func ParseMatrix(s string) ([][]float64, error) {
	var rows [][]float64
	if err := yaml.Unmarshal([]byte(s), &rows); err != nil {
		return nil, fmt.Errorf("parse matrix %q: %w", s, err)
	}

	return rows, nil
}
