package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// report is what solve prints. Unrequested parts stay nil and are omitted.
type report struct {
	Input  string  `json:"input" yaml:"input"`
	Seeds  int     `json:"seeds" yaml:"seeds"`
	Stages int     `json:"stages" yaml:"stages"`
	Part1  *uint64 `json:"part1,omitempty" yaml:"part1,omitempty"`
	Part2  *uint64 `json:"part2,omitempty" yaml:"part2,omitempty"`
}

// styles holds the color formatters for text output.
type styles struct {
	heading *color.Color
	label   *color.Color
	answer  *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		label:   color.New(color.FgHiBlue),
		answer:  color.New(color.Bold, color.FgHiGreen),
	}
	for _, c := range []*color.Color{s.heading, s.label, s.answer} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func validateFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// colorEnabled resolves the --color flag. "auto" colors only a terminal
// stdout with NO_COLOR unset.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

func writeReport(w io.Writer, rep report, format, colorMode string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeText(w, rep, newStyles(colorEnabled(colorMode)))
	default:
		return validateFormat(format)
	}
}

func writeText(w io.Writer, rep report, s *styles) error {
	if _, err := s.heading.Fprintf(w, "%s (%d seeds, %d stages)\n", rep.Input, rep.Seeds, rep.Stages); err != nil {
		return err
	}
	lines := []struct {
		name string
		v    *uint64
	}{
		{"Part one", rep.Part1},
		{"Part two", rep.Part2},
	}
	for _, l := range lines {
		if l.v == nil {
			continue
		}
		if _, err := s.label.Fprintf(w, "%s: ", l.name); err != nil {
			return err
		}
		if _, err := s.answer.Fprintf(w, "%d\n", *l.v); err != nil {
			return err
		}
	}
	return nil
}
