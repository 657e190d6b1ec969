package almanac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/remap/rangemap"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = "map:"

	// maxLineBytes bounds a single input line; seed lists are the longest.
	maxLineBytes = 1 << 20
)

// LoadFile reads and parses the almanac stored at path.
func LoadFile(path string) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("almanac: open input: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseString parses an almanac held in memory.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads an almanac from r. Map blocks are separated by blank lines
// or by the next header; the last block may run to EOF. CRLF line endings
// are accepted.
func Parse(r io.Reader) (*Almanac, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	if err := p.seeds(); err != nil {
		return nil, err
	}
	if err := p.blocks(); err != nil {
		return nil, err
	}

	return &Almanac{Seeds: p.seedList, Stages: p.stages}, nil
}

// parser carries line-oriented state across the two input sections.
type parser struct {
	sc   *bufio.Scanner
	line int

	seedList []uint64
	stages   []Stage

	name    string            // header of the open block
	builder *rangemap.Builder // nil when no block is open
}

// next advances to the following line. ok is false at EOF.
func (p *parser) next() (string, bool, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", false, fmt.Errorf("almanac: read line %d: %w", p.line+1, err)
		}
		return "", false, nil
	}
	p.line++
	return strings.TrimRight(p.sc.Text(), "\r"), true, nil
}

// seeds consumes the "seeds:" line and the blank line after it.
func (p *parser) seeds() error {
	text, ok, err := p.next()
	if err != nil {
		return err
	}
	if !ok {
		return ErrEmptyInput
	}

	rest, found := strings.CutPrefix(strings.TrimSpace(text), seedsPrefix)
	if !found {
		return fmt.Errorf("%w (line %d)", ErrMissingSeeds, p.line)
	}
	if p.seedList, err = p.numbers(rest); err != nil {
		return err
	}

	text, ok, err = p.next()
	if err != nil || !ok {
		return err
	}
	if strings.TrimSpace(text) != "" {
		return fmt.Errorf("%w (line %d)", ErrMissingSeparator, p.line)
	}
	return nil
}

// blocks consumes every map block up to EOF.
func (p *parser) blocks() error {
	for {
		text, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok {
			return p.closeBlock()
		}

		text = strings.TrimSpace(text)
		switch {
		case text == "":
			if err := p.closeBlock(); err != nil {
				return err
			}

		case strings.HasSuffix(text, headerSuffix):
			if err := p.closeBlock(); err != nil {
				return err
			}
			p.name = strings.TrimSpace(strings.TrimSuffix(text, headerSuffix))
			p.builder = rangemap.NewBuilder()

		default:
			if p.builder == nil {
				return fmt.Errorf("%w (line %d)", ErrEntryOutsideBlock, p.line)
			}
			nums, err := p.numbers(text)
			if err != nil {
				return err
			}
			if len(nums) != 3 {
				return fmt.Errorf("%w (line %d: got %d values)", ErrBadTriple, p.line, len(nums))
			}
			p.builder.AddRange(nums[0], nums[1], nums[2])
		}
	}
}

// closeBlock builds the open block, if any, and appends it as a stage.
func (p *parser) closeBlock() error {
	if p.builder == nil {
		return nil
	}
	m, err := p.builder.Build()
	if err != nil {
		return fmt.Errorf("almanac: block %q ending at line %d: %w", p.name, p.line, err)
	}
	p.stages = append(p.stages, Stage{Name: p.name, Map: m})
	p.name, p.builder = "", nil
	return nil
}

// numbers parses whitespace-separated unsigned integers.
func (p *parser) numbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q (line %d)", ErrBadNumber, f, p.line)
		}
		out = append(out, n)
	}
	return out, nil
}
