package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cellfix/fixture"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, n := range fixture.Names() {
				d, err := fixture.Describe(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-16s %s\n", n, d)
			}
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [fixture...]",
		Short: "Run fixtures (all of them when none is named)",
		Example: `  cellfix run
  cellfix run fibonacci
  cellfix run --inputs inputs.yaml -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := fixture.LoadInputs(a.cfg.InputsPath)
			if err != nil {
				return err
			}

			names := fixture.Names()
			if len(args) > 0 {
				names = make([]fixture.Name, len(args))
				for i, arg := range args {
					names[i] = fixture.Name(arg)
				}
			}

			resolved := make([]string, len(names))
			for i, n := range names {
				resolved[i] = string(n)
			}
			a.logger.Debug("running fixtures",
				zap.Strings("fixtures", resolved),
				zap.String("inputs", a.cfg.InputsPath))

			results, err := fixture.NewRunner(a.logger, in, a.matrixOpts()...).RunNames(names...)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
}

func (a *app) matmulCmd() *cobra.Command {
	var left, right string

	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "Multiply two matrices given as YAML flow sequences",
		Example: `  cellfix matmul --a '[[1, 2], [3, 4]]' --b '[[5, 6], [7, 8]]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := fixture.LoadInputs(a.cfg.InputsPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("a") {
				if in.MatrixMultiply.A, err = fixture.ParseMatrix(left); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("b") {
				if in.MatrixMultiply.B, err = fixture.ParseMatrix(right); err != nil {
					return err
				}
			}

			res, err := fixture.NewRunner(a.logger, in, a.matrixOpts()...).Run(fixture.MatrixMultiply)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Output, []fixture.Result{res})
		},
	}
	cmd.Flags().StringVar(&left, "a", "", "left matrix, e.g. '[[1, 2], [3, 4]]'")
	cmd.Flags().StringVar(&right, "b", "", "right matrix, e.g. '[[5, 6], [7, 8]]'")

	return cmd
}

func (a *app) fibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fib [n]",
		Short: "Compute the n-th Fibonacci number",
		Long: `Computes F(n) with F(0)=0, F(1)=1 by plain double recursion.
Running time grows as φ^n: n=40 takes about a second, and every step up
multiplies the cost by ~1.6, so indices above ~45 are impractical even
though values up to 93 fit in uint64 and are accepted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := fixture.LoadInputs(a.cfg.InputsPath)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid index %q: %w", args[0], err)
				}
				in.Fibonacci.N = n
			}

			res, err := fixture.NewRunner(a.logger, in).Run(fixture.Fibonacci)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Output, []fixture.Result{res})
		},
	}
}
