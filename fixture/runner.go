package fixture

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/cellfix/matrix"
)

// Result is the outcome of one fixture run. Value is [][]float64 for
// matrix-multiply, uint64 for fibonacci and []string for greet.
type Result struct {
	Fixture Name `yaml:"fixture"`
	Value   any  `yaml:"value"`
}

// Runner executes fixtures against a fixed set of inputs.
type Runner struct {
	log    *zap.Logger
	inputs Inputs
	opts   []matrix.Option
}

// NewRunner returns a Runner. opts are forwarded to matrix ingestion.
func NewRunner(log *zap.Logger, inputs Inputs, opts ...matrix.Option) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{
		log:    log.Named("fixture"),
		inputs: inputs,
		opts:   opts,
	}
}

// Run executes a single fixture by name.
func (r *Runner) Run(name Name) (Result, error) {
	e, err := lookup(name)
	if err != nil {
		r.log.Error("fixture lookup failed", zap.String("fixture", string(name)), zap.Error(err))
		return Result{}, err
	}

	start := time.Now()
	r.log.Debug("fixture started", zap.String("fixture", string(name)))

	v, err := e.run(r)
	if err != nil {
		r.log.Error("fixture failed",
			zap.String("fixture", string(name)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return Result{}, fmt.Errorf("run %s: %w", name, err)
	}

	r.log.Debug("fixture finished",
		zap.String("fixture", string(name)),
		zap.Duration("elapsed", time.Since(start)))

	return Result{Fixture: name, Value: v}, nil
}

// RunAll executes every registered fixture in order and stops at the first error.
func (r *Runner) RunAll() ([]Result, error) {
	return r.RunNames(Names()...)
}

// RunNames executes the named fixtures in the given order.
func (r *Runner) RunNames(names ...Name) ([]Result, error) {
	out := make([]Result, 0, len(names))
	for _, n := range names {
		res, err := r.Run(n)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}

	return out, nil
}
