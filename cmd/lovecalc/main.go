package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := rootCmd()
	cmd.AddCommand(scoreCmd())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootCmd calculates, shows and saves a result.
func rootCmd() *cobra.Command {
	var opts calcOptions
	cmd := &cobra.Command{
		Use:   "lovecalc",
		Short: "Love percentage calculator",
		Long: `Calculate the love percentage for two names and save it to a lovecalc server.

The result is shown as soon as it is computed. Saving happens afterwards;
if it fails a warning is printed but the result stands.

Examples:
  lovecalc --name Romeo --age 17 --crush Juliet
  lovecalc --name Romeo --age 17 --crush Juliet --explain
  lovecalc score Romeo Juliet`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "your name")
	cmd.Flags().StringVar(&opts.age, "age", "", "your age")
	cmd.Flags().StringVar(&opts.crush, "crush", "", "your crush's name")
	cmd.Flags().StringVar(&opts.server, "server", envOr("LOVECALC_SERVER_URL", "http://localhost:9080"), "lovecalc server base URL")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "save request timeout")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "print every step of the calculation")
	return cmd
}

// scoreCmd computes a score locally without saving it.
func scoreCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "score <name> <crush>",
		Short: "Compute a love percentage without saving it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printScore(cmd.OutOrStdout(), args[0], args[1], explain)
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "print every step of the calculation")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
