package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/remap/almanac"
)

const defaultInput = "inputs/day05.txt"

var (
	solveInput  string
	solvePart   string
	solveFormat string
	solveColor  string
)

var solveCmd = &cobra.Command{
	Use:   "solve [input]",
	Short: "Compute the lowest locations for an almanac",
	Long: `Parse an almanac file and print the answers.

The input path comes from the positional argument, then --input, then
` + defaultInput + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", defaultInput, "Path to the almanac file")
	solveCmd.Flags().StringVar(&solvePart, "part", "all", "Which answer to compute: 1, 2, all")
	solveCmd.Flags().StringVar(&solveFormat, "format", "text", "Output format: text, json, yaml")
	solveCmd.Flags().StringVar(&solveColor, "color", "auto", "Color output: auto, always, never")
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := solveInput
	if len(args) == 1 {
		path = args[0]
	}

	wantOne, wantTwo, err := parsePart(solvePart)
	if err != nil {
		return err
	}
	if err := validateFormat(solveFormat); err != nil {
		return err
	}

	a, err := timed("Read input", func() (*almanac.Almanac, error) {
		return almanac.LoadFile(path)
	})
	if err != nil {
		return err
	}
	klog.V(2).InfoS("parsed almanac", "path", path, "seeds", len(a.Seeds), "stages", a.StageNames())

	rep := report{Input: path, Seeds: len(a.Seeds), Stages: len(a.Stages)}

	if wantOne {
		v, err := timed("Part one", a.LowestLocation)
		if err != nil {
			return fmt.Errorf("part 1: %w", err)
		}
		rep.Part1 = &v
	}
	if wantTwo {
		v, err := timed("Part two", a.LowestRangeLocation)
		if err != nil {
			return fmt.Errorf("part 2: %w", err)
		}
		rep.Part2 = &v
	}

	return writeReport(cmd.OutOrStdout(), rep, solveFormat, solveColor)
}

// parsePart decodes the --part flag.
func parsePart(part string) (one, two bool, err error) {
	switch part {
	case "1":
		return true, false, nil
	case "2":
		return false, true, nil
	case "all", "":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("unknown part %q (want 1, 2 or all)", part)
	}
}

// timed runs fn and logs its duration at verbosity 1.
func timed[T any](label string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	klog.V(1).InfoS("stage finished", "stage", label, "elapsed", time.Since(start), "ok", err == nil)
	return v, err
}
