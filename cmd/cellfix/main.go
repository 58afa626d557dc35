// Command cellfix runs the matrix-multiply, Fibonacci and greet fixtures
// and prints their results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cellfix/internal/config"
	"github.com/katalvlaran/cellfix/matrix"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries resolved configuration and the logger between commands.
type app struct {
	cfg    config.Config
	logger *zap.Logger

	// persistent flag values; they win over the environment when set
	logLevel   string
	output     string
	inputs     string
	noValidate bool
}

// newRootCmd builds the command tree. A non-nil logger is used as-is
// instead of building one from configuration.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "cellfix",
		Short: "Run the matrix-multiply, Fibonacci and greet fixtures",
		Long: `cellfix runs small fixtures with literal sample inputs and prints
their results:

  matrix-multiply  C = A × B by the naive triple loop
  fibonacci        F(n) by double recursion
  greet            "Hello, User<i>! <i>" for i in 0..count-1

Inputs default to the samples ([[1,2],[3,4]] × [[5,6],[7,8]], n = 10,
count = 3) and can be overridden with a YAML file (--inputs or
CELLFIX_INPUTS).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides CELLFIX_LOG_LEVEL)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text or yaml (overrides CELLFIX_OUTPUT)")
	flags.StringVar(&a.inputs, "inputs", "", "YAML inputs file (overrides CELLFIX_INPUTS)")
	flags.BoolVar(&a.noValidate, "no-validate-nan-inf", false, "accept NaN and Inf matrix entries")

	root.AddCommand(a.listCmd(), a.runCmd(), a.matmulCmd(), a.fibCmd())

	return root
}

// setup resolves env + flags into a.cfg and initializes the logger.
// Validation runs once, after flags have been applied.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("inputs") {
		cfg.InputsPath = a.inputs
	}
	if flags.Changed("no-validate-nan-inf") {
		cfg.ValidateNaNInf = !a.noValidate
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger != nil {
		return nil
	}
	a.logger, err = buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.LogFormat == config.FormatJSON {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	return zcfg.Build()
}

// matrixOpts maps the numeric policy onto matrix options.
func (a *app) matrixOpts() []matrix.Option {
	if a.cfg.ValidateNaNInf {
		return []matrix.Option{matrix.WithValidateNaNInf()}
	}

	return []matrix.Option{matrix.WithNoValidateNaNInf()}
}
