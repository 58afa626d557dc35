package fixture

import (
	"fmt"

	"github.com/katalvlaran/cellfix/fibonacci"
	"github.com/katalvlaran/cellfix/matrix"
)

// Name identifies a fixture.
type Name string

const (
	MatrixMultiply Name = "matrix-multiply"
	Fibonacci      Name = "fibonacci"
	Greet          Name = "greet"
)

// entry binds a name to its description and body.
type entry struct {
	name        Name
	description string
	run         func(r *Runner) (any, error)
}

// registry is kept in presentation order.
var registry = []entry{
	{
		name:        MatrixMultiply,
		description: "multiply two matrices with the naive triple loop",
		run: func(r *Runner) (any, error) {
			return matrix.MultiplyRows(r.inputs.MatrixMultiply.A, r.inputs.MatrixMultiply.B, r.opts...)
		},
	},
	{
		name:        Fibonacci,
		description: "n-th Fibonacci number by double recursion",
		run: func(r *Runner) (any, error) {
			return fibonacci.Fibonacci(r.inputs.Fibonacci.N)
		},
	},
	{
		name:        Greet,
		description: "greet User0..User<n-1> next to their Dummy values",
		run: func(r *Runner) (any, error) {
			return greetLines(r.inputs.Greet.Count)
		},
	},
}

// Names returns every fixture name in registration order.
func Names() []Name {
	out := make([]Name, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}

	return out
}

// Describe returns the one-line description of name.
func Describe(name Name) (string, error) {
	e, err := lookup(name)
	if err != nil {
		return "", err
	}

	return e.description, nil
}

func lookup(name Name) (entry, error) {
	for _, e := range registry {
		if e.name == name {
			return e, nil
		}
	}

	return entry{}, fmt.Errorf("%q: %w", name, ErrUnknownFixture)
}
