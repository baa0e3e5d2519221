// Command schemahint inspects the token savings of compact schema encoding.
package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/skosovsky/schemahint"
)

var simple bool

func main() {
	root := &cobra.Command{
		Use:   "schemahint",
		Short: "Compress JSON Schemas into compact LLM prompt hints",
		Long: `schemahint folds JSON Schema tool definitions into one-line hint strings
and reports estimated token savings against the pretty-printed original.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&simple, "simple", false, "use the character-based token estimator")
	root.AddCommand(schemaCmd(), toolsCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// estimatorOpts translates the --simple flag into library options.
func estimatorOpts() []schemahint.Option {
	if simple {
		return []schemahint.Option{schemahint.WithEstimator(schemahint.EstimateTokensSimple)}
	}
	return nil
}

func schemaCmd() *cobra.Command {
	var noMetrics bool
	cmd := &cobra.Command{
		Use:   "schema [file]",
		Short: "Compress a single JSON Schema (file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			m := schemahint.CompressJSON(data, estimatorOpts()...)
			fmt.Fprintln(cmd.OutOrStdout(), m.Compressed)
			if !noMetrics {
				printSavings(cmd.OutOrStdout(), m.OriginalTokens, m.CompressedTokens, m.Reduction)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "print only the compact encoding")
	return cmd
}

func toolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools [file]",
		Short: "Compress a JSON array of {name, inputSchema} tool descriptors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			var tools []schemahint.Tool
			if err := json.Unmarshal(data, &tools); err != nil {
				return fmt.Errorf("parse tools: %w", err)
			}
			b := schemahint.CompressTools(tools, estimatorOpts()...)
			fmt.Fprintln(cmd.OutOrStdout(), b.PromptBlock())
			printSavings(cmd.OutOrStdout(), b.OriginalTokens, b.CompressedTokens, b.TotalReduction)
			return nil
		},
	}
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}

func printSavings(w io.Writer, original, compressed, reduction int) {
	fmt.Fprintf(w, "tokens: %d -> %d (saved %d%%)\n", original, compressed, reduction)
}
