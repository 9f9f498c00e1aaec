package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/okian/lovecalc/internal/client"
	"github.com/okian/lovecalc/internal/domain/scoring"
)

const defaultTimeout = 10 * time.Second

type calcOptions struct {
	name    string
	age     string
	crush   string
	server  string
	timeout time.Duration
	explain bool
}

func runCalculate(ctx context.Context, out io.Writer, opts calcOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	calc := client.NewCalculator(
		client.NewAPI(opts.server, opts.timeout),
		client.WithDisplay(func(r client.Result) {
			printResult(out, r, opts.explain)
		}),
	)

	outcome, err := calc.Run(ctx, client.Input{YourName: opts.name, YourAge: opts.age, CrushName: opts.crush})
	if err != nil {
		return err
	}

	if err := <-outcome.Saved; err != nil {
		fmt.Fprintf(out, "%s saving to the database failed. reason: %s\n",
			color.New(color.FgYellow).Sprint("WARNING"), client.Reason(err))
		return nil
	}
	fmt.Fprintf(out, "%s\n", color.New(color.FgGreen).Sprint("saved"))
	return nil
}

func printResult(out io.Writer, r client.Result, explain bool) {
	fmt.Fprintf(out, "%s + %s = %s\n", r.YourName, r.CrushName,
		color.New(color.FgMagenta, color.Bold).Sprintf("%d%%", r.Percentage))
	if r.BelowMinAge() {
		fmt.Fprintf(out, "%s ages under %d are not the intended audience\n",
			color.New(color.FgYellow).Sprint("note:"), client.MinAge)
	}
	if explain {
		printBreakdown(out, r.Breakdown)
	}
}

func printScore(out io.Writer, name, crush string, explain bool) {
	b := scoring.Explain(name, crush)
	fmt.Fprintf(out, "%s + %s = %s\n", name, crush,
		color.New(color.FgMagenta, color.Bold).Sprintf("%d%%", b.Score))
	if explain {
		printBreakdown(out, b)
	}
}

func printBreakdown(out io.Writer, b scoring.Breakdown) {
	dim := color.New(color.Faint)
	fmt.Fprintf(out, "  %s %q\n", dim.Sprint("letters:"), b.Combined)
	fmt.Fprintf(out, "  %s %s\n", dim.Sprint("counts: "), joinInts(b.Counts))
	for i, p := range b.Passes {
		fmt.Fprintf(out, "  %s %s\n", dim.Sprintf("pass %d: ", i+1), joinInts(p))
	}
	fmt.Fprintf(out, "  %s %d -> %d\n", dim.Sprint("raw:    "), b.Raw, b.Score)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
