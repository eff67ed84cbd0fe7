package citygraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Section headers of the text format.
const (
	HeaderNodes = "NODES"
	HeaderArcs  = "ARCS"
)

// ErrCountMismatch indicates the declared node count differs from the
// number of node records present. It is always wrapped with ErrMalformedInput.
var ErrCountMismatch = errors.New("citygraph: node count mismatch")

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("citygraph: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Load parses a NODES/ARCS text source. Node IDs follow read order.
// Parsing is strict: the first violation aborts the load and no graph is
// returned. Blank lines are ignored.
func Load(r io.Reader) (*Graph, error) {
	p := &parser{sc: bufio.NewScanner(r)}

	g, err := p.parse()
	if err != nil {
		return nil, err
	}

	return g, nil
}

// parser holds the scanning state of one Load call.
type parser struct {
	sc   *bufio.Scanner
	line int // 1-based number of the last line returned by next
	b    *Builder
}

// next returns the next non-blank line, trimmed. ok is false at end of input.
func (p *parser) next() (text string, ok bool, err error) {
	for p.sc.Scan() {
		p.line++
		text = strings.TrimSpace(p.sc.Text())
		if text != "" {
			return text, true, nil
		}
	}
	if err = p.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", false, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, p.line+1, err)
		}
		return "", false, fmt.Errorf("citygraph: read source: %w", err)
	}

	return "", false, nil
}

// malformed builds a line-tagged ErrMalformedInput.
func (p *parser) malformed(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, p.line, fmt.Sprintf(format, args...))
}

// wrap tags a precise sentinel with ErrMalformedInput and the line number.
func (p *parser) wrap(err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrMalformedInput, p.line, err)
}

func (p *parser) parse() (*Graph, error) {
	// 1) Header.
	text, ok, err := p.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: empty source", ErrMalformedInput)
	}
	if text != HeaderNodes {
		return nil, p.malformed("expected %s header, got %q", HeaderNodes, text)
	}

	// 2) Node count.
	text, ok, err = p.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing node count", ErrMalformedInput)
	}
	count, convErr := strconv.Atoi(text)
	if convErr != nil || count < 0 {
		return nil, p.malformed("node count %q is not a non-negative integer", text)
	}

	// 3) Node records.
	p.b = NewBuilder(count)
	if err = p.parseNodes(count); err != nil {
		return nil, err
	}

	// 4) Optional ARCS section.
	text, ok, err = p.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return p.b.Build(), nil
	}
	if text != HeaderArcs {
		if _, _, _, recErr := parseNodeRecord(text); recErr == nil {
			return nil, p.wrap(fmt.Errorf("%w: declared %d, found more", ErrCountMismatch, count))
		}
		return nil, p.malformed("expected %s header, got %q", HeaderArcs, text)
	}
	if err = p.parseArcs(); err != nil {
		return nil, err
	}

	return p.b.Build(), nil
}

func (p *parser) parseNodes(count int) error {
	for i := 0; i < count; i++ {
		text, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok || text == HeaderArcs {
			return p.wrap(fmt.Errorf("%w: declared %d, found %d", ErrCountMismatch, count, i))
		}
		label, x, y, recErr := parseNodeRecord(text)
		if recErr != nil {
			return p.malformed("%v", recErr)
		}
		if _, addErr := p.b.AddNode(label, Point{X: x, Y: y}); addErr != nil {
			return p.wrap(addErr)
		}
	}

	return nil
}

func (p *parser) parseArcs() error {
	for {
		text, ok, err := p.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return p.malformed("edge record %q needs <labelA> <labelB> <weight>", text)
		}
		w, convErr := strconv.ParseInt(fields[2], 10, 64)
		if convErr != nil {
			return p.malformed("weight %q is not an integer", fields[2])
		}
		if addErr := p.b.AddEdge(fields[0], fields[1], w); addErr != nil {
			return p.wrap(addErr)
		}
	}
}

// parseNodeRecord splits "<label> <x> <y>".
func parseNodeRecord(text string) (string, float64, float64, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return "", 0, 0, fmt.Errorf("node record %q needs <label> <x> <y>", text)
	}
	x, err := parseCoord(fields[1])
	if err != nil {
		return "", 0, 0, err
	}
	y, err := parseCoord(fields[2])
	if err != nil {
		return "", 0, 0, err
	}

	return fields[0], x, y, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not a finite number", s)
	}

	return v, nil
}
