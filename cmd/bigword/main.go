package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/oisee/bigword"
	"github.com/oisee/bigword/internal/config"
	"github.com/oisee/bigword/internal/fuzz"
	"github.com/oisee/bigword/internal/trace"
	"github.com/oisee/bigword/internal/word"
	"github.com/spf13/cobra"
)

func main() {
	var cfgPath string
	var width int
	var baseStr string
	var sepStr string
	var verbose bool
	var tracePath string

	rootCmd := &cobra.Command{
		Use:   "bigword",
		Short: "Arbitrary-precision signed integer arithmetic over a configurable word width",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.Width
			}
			if !cmd.Flags().Changed("base") {
				baseStr = cfg.Base
			}
			if !cmd.Flags().Changed("sep") {
				sepStr = cfg.Separator
			}
			if verbose {
				log.SetFlags(0)
				log.Printf("bigword: width=%d base=%s", width, baseStr)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a bigword.toml config file")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "Word width in bits: 8, 16, or 32 (0 = use config default)")
	rootCmd.PersistentFlags().StringVar(&baseStr, "base", "", "Output base: bin, oct, dec, hex (empty = use config default)")
	rootCmd.PersistentFlags().StringVar(&sepStr, "sep", "", "Digit group separator character")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().StringVar(&tracePath, "trace", "", "Write a gob trace of the operation to this path")

	calcCmd := &cobra.Command{
		Use:   "calc <op> <a> <b>",
		Short: "Run a binary operation: add, sub, mul, div, mod, and, or, xor, shl, shr",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(width, baseStr, sepStr, tracePath, args)
		},
	}

	convertCmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Reformat a decimal value into another base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(width, baseStr, sepStr, args[0])
		},
	}

	var fuzzIterations int
	var fuzzWorkers int
	fuzzCmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Run randomized property checks against the arithmetic invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuzz(width, fuzzIterations, fuzzWorkers)
		},
	}
	fuzzCmd.Flags().IntVar(&fuzzIterations, "iterations", 10000, "Number of random trials")
	fuzzCmd.Flags().IntVar(&fuzzWorkers, "workers", 0, "Number of workers (0 = NumCPU)")

	rootCmd.AddCommand(calcCmd, convertCmd, fuzzCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseBase(s string) (bigword.Base, error) {
	switch strings.ToLower(s) {
	case "", "dec":
		return bigword.Decimal, nil
	case "bin":
		return bigword.Binary, nil
	case "oct":
		return bigword.Octal, nil
	case "hex":
		return bigword.Hex, nil
	default:
		return 0, fmt.Errorf("unknown base %q: use bin, oct, dec, or hex", s)
	}
}

func parseSep(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

// runCalc dispatches the requested op to a concrete BigWord[W] instance
// sized by width, since the generic operations cannot be selected at
// runtime without a concrete word type.
func runCalc(width int, baseStr, sepStr, tracePath string, args []string) error {
	base, err := parseBase(baseStr)
	if err != nil {
		return err
	}
	op := args[0]
	a, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("parsing operand %q: %w", args[1], err)
	}
	var b int64
	if len(args) == 3 {
		b, err = strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing operand %q: %w", args[2], err)
		}
	}

	var result string
	switch width {
	case 8:
		result, err = calc[uint8](op, a, b, base, parseSep(sepStr))
	case 16:
		result, err = calc[uint16](op, a, b, base, parseSep(sepStr))
	case 32:
		result, err = calc[uint32](op, a, b, base, parseSep(sepStr))
	default:
		return fmt.Errorf("unsupported width %d: use 8, 16, or 32", width)
	}
	if err != nil {
		return err
	}

	fmt.Println(result)

	if tracePath != "" {
		var operand2 string
		if len(args) == 3 {
			operand2 = args[2]
		}
		t := &trace.Trace{Steps: []trace.Step{{
			Op: op, Width: width,
			Operand1: args[1],
			Operand2: operand2,
			Result:   result,
		}}}
		if err := trace.Save(tracePath, t); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	return nil
}

func calc[W word.Unsigned](op string, a, b int64, base bigword.Base, sep byte) (string, error) {
	x := bigword.FromInt[int64, W](a)
	y := bigword.FromInt[int64, W](b)

	switch op {
	case "add":
		return x.Add(y).Format(base, sep), nil
	case "sub":
		return x.Sub(y).Format(base, sep), nil
	case "mul":
		return x.Mul(y).Format(base, sep), nil
	case "div":
		r, err := x.Div(y)
		if err != nil {
			return "", err
		}
		return r.Format(base, sep), nil
	case "mod":
		r, err := x.Mod(y)
		if err != nil {
			return "", err
		}
		return r.Format(base, sep), nil
	case "and":
		return x.And(y).Format(base, sep), nil
	case "or":
		return x.Or(y).Format(base, sep), nil
	case "xor":
		return x.Xor(y).Format(base, sep), nil
	case "shl":
		return x.Shl(int(b)).Format(base, sep), nil
	case "shr":
		return x.Shr(int(b)).Format(base, sep), nil
	default:
		return "", fmt.Errorf("unknown op %q", op)
	}
}

func runConvert(width int, baseStr, sepStr, value string) error {
	base, err := parseBase(baseStr)
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing value %q: %w", value, err)
	}

	var out string
	switch width {
	case 8:
		out = bigword.FromInt[int64, uint8](v).Format(base, parseSep(sepStr))
	case 16:
		out = bigword.FromInt[int64, uint16](v).Format(base, parseSep(sepStr))
	case 32:
		out = bigword.FromInt[int64, uint32](v).Format(base, parseSep(sepStr))
	default:
		return fmt.Errorf("unsupported width %d: use 8, 16, or 32", width)
	}

	fmt.Println(out)
	return nil
}

func runFuzz(width, iterations, workers int) error {
	var report fuzzReport
	switch width {
	case 8:
		report = fuzzReport(fuzz.Run[uint8](iterations, workers))
	case 16:
		report = fuzzReport(fuzz.Run[uint16](iterations, workers))
	case 32:
		report = fuzzReport(fuzz.Run[uint32](iterations, workers))
	default:
		return fmt.Errorf("unsupported width %d: use 8, 16, or 32", width)
	}

	fmt.Printf("checked %d trials, %d failures\n", report.Checked, len(report.Failures))
	for _, f := range report.Failures {
		fmt.Printf("  FAIL [%s] %s\n", f.Property, f.Detail)
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d property failures", len(report.Failures))
	}
	return nil
}

type fuzzReport = fuzz.Report
