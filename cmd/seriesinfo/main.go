// Command seriesinfo prints series approximations next to reference values.
//
// Usage:
//
//	seriesinfo [flags] [function-name ...]
//
// Without arguments it prints every known function.
//
// Examples:
//
//	seriesinfo sin cos
//	seriesinfo -x 10 -terms 5,10,20 exp
//	seriesinfo -x 2.5 -alpha 1 bessel
//	seriesinfo -all
//	seriesinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-special/series"
	"github.com/cwbudde/algo-special/special"
	"github.com/cwbudde/algo-special/taylor"
)

type evalFunc func(x, alpha float64, opts ...series.Option) float64

type funcEntry struct {
	name      string
	hasTerms  bool
	eval      evalFunc
	reference func(x, alpha float64) float64
}

var registry = []funcEntry{
	{"exp", true, func(x, _ float64, opts ...series.Option) float64 { return taylor.Exp(x, opts...) }, ignoreAlpha(math.Exp)},
	{"sin", true, func(x, _ float64, opts ...series.Option) float64 { return taylor.Sin(x, opts...) }, ignoreAlpha(math.Sin)},
	{"cos", true, func(x, _ float64, opts ...series.Option) float64 { return taylor.Cos(x, opts...) }, ignoreAlpha(math.Cos)},
	{"tan", true, func(x, _ float64, opts ...series.Option) float64 { return taylor.Tan(x, opts...) }, ignoreAlpha(math.Tan)},
	{"gamma", false, func(x, _ float64, opts ...series.Option) float64 {
		return realOrNaN(special.Gamma(complex(x, 0), opts...))
	}, ignoreAlpha(math.Gamma)},
	{"gamma-euler", true, func(x, _ float64, opts ...series.Option) float64 {
		return realOrNaN(special.GammaEuler(complex(x, 0), opts...))
	}, ignoreAlpha(math.Gamma)},
	{"bessel", true, func(x, alpha float64, opts ...series.Option) float64 {
		return realOrNaN(special.Bessel(alpha, complex(x, 0), opts...))
	}, besselReference},
	{"factorial", false, func(x, _ float64, _ ...series.Option) float64 {
		n, err := special.Factorial(int(x))
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}, func(x, _ float64) float64 { return math.Gamma(math.Trunc(x) + 1) }},
}

func main() {
	x := flag.Float64("x", 1, "evaluation point")
	alpha := flag.Float64("alpha", 0, "Bessel order")
	termsFlag := flag.String("terms", "5,10,20,50,100", "comma-separated term counts")
	all := flag.Bool("all", false, "show all functions")
	list := flag.Bool("list", false, "list available function names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seriesinfo [flags] [function-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints series approximations, reference values and absolute errors.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints every function.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  seriesinfo sin cos\n")
		fmt.Fprintf(os.Stderr, "  seriesinfo -x 10 -terms 5,10,20 exp\n")
		fmt.Fprintf(os.Stderr, "  seriesinfo -x 2.5 -alpha 1 bessel\n")
		fmt.Fprintf(os.Stderr, "  seriesinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	terms, err := parseTerms(*termsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}

	printTable(entries, *x, *alpha, terms)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func parseTerms(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid term count %q: %w", field, err)
		}
		out = append(out, n)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no term counts in %q", s)
	}

	return out, nil
}

func resolveEntries(names []string) []funcEntry {
	byName := make(map[string]funcEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []funcEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

type row struct {
	label  string
	terms  string
	approx float64
	ref    float64
}

func buildRows(entries []funcEntry, x, alpha float64, terms []int) []row {
	var rows []row
	for _, e := range entries {
		label := e.name
		if e.name == "bessel" {
			label = fmt.Sprintf("bessel (a=%g)", alpha)
		}
		ref := e.reference(x, alpha)

		if !e.hasTerms {
			rows = append(rows, row{label, "-", e.eval(x, alpha), ref})
			continue
		}

		for _, n := range terms {
			rows = append(rows, row{label, strconv.Itoa(n), e.eval(x, alpha, series.WithTerms(n)), ref})
		}
	}
	return rows
}

func printTable(entries []funcEntry, x, alpha float64, terms []int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tx\tTerms\tApproximation\tReference\tAbs Error\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "--------\t-\t-----\t-------------\t---------\t---------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, r := range buildRows(entries, x, alpha, terms) {
		if _, err := fmt.Fprintf(tw, "%s\t%g\t%s\t%.15g\t%s\t%s\n",
			r.label,
			x,
			r.terms,
			r.approx,
			formatOptional(r.ref, "%.15g"),
			formatOptional(math.Abs(r.approx-r.ref), "%.3e"),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func formatOptional(v float64, format string) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}

func realOrNaN(v series.Value) float64 {
	f, ok := v.Float()
	if !ok {
		return math.NaN()
	}
	return f
}

func ignoreAlpha(f func(float64) float64) func(x, alpha float64) float64 {
	return func(x, _ float64) float64 { return f(x) }
}

// besselReference covers the orders the standard library can evaluate:
// integers and the closed-form half orders ±1/2.
func besselReference(x, alpha float64) float64 {
	switch {
	case alpha == math.Trunc(alpha) && math.Abs(alpha) < 1<<20:
		return math.Jn(int(alpha), x)
	case alpha == 0.5 && x > 0:
		return math.Sqrt(2/(math.Pi*x)) * math.Sin(x)
	case alpha == -0.5 && x > 0:
		return math.Sqrt(2/(math.Pi*x)) * math.Cos(x)
	default:
		return math.NaN()
	}
}
