package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cellfix/fixture"
	"github.com/katalvlaran/cellfix/internal/config"
	"github.com/katalvlaran/cellfix/matrix"
)

// render writes results as text (name line + value) or as a YAML list.
func render(w io.Writer, format string, results []fixture.Result) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		return enc.Close()
	}

	for _, r := range results {
		fmt.Fprintf(w, "%s:\n", r.Fixture)
		switch v := r.Value.(type) {
		case [][]float64:
			d, err := matrix.NewDenseFromRows(v, matrix.WithNoValidateNaNInf())
			if err != nil {
				return err
			}
			fmt.Fprint(w, d)
		case []string:
			for _, line := range v {
				fmt.Fprintln(w, line)
			}
		default:
			fmt.Fprintf(w, "%v\n", v)
		}
	}

	return nil
}
