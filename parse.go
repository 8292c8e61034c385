package grad

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ggrHeader is the literal first line of every GIMP gradient file.
const ggrHeader = "GIMP Gradient"

// ggrNamePrefix starts the optional name line.
const ggrNamePrefix = "Name:"

// segmentColumns is the minimum column count of a segment data line:
// three positions, two RGBA colors, and the two mode indices. Newer
// format revisions append extra columns, which are ignored.
const segmentColumns = 13

// FormatError reports a fatal failure to parse a gradient file: the
// input is not recognizably in the GIMP gradient format. Recoverable
// problems inside individual segment lines never produce a FormatError;
// they are logged and the line is skipped.
type FormatError struct {
	// Line is the 1-based line number in the input, or 0 when the
	// failure is not tied to one line.
	Line int

	// Reason describes the failure.
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grad: line %d: %s", e.Line, e.Reason)
	}
	return "grad: " + e.Reason
}

// ParseGGR parses a GIMP gradient file (.ggr).
//
// The id becomes the Resource.ID used for lookup-table caching; it is
// caller-assigned and not part of the file format.
//
// Parsing is tolerant: segment lines with too few columns are skipped,
// out-of-range blend or coloring indices fall back to their defaults,
// and truncated files yield the segments read so far, all with
// diagnostics through the package logger. ParseGGR fails only when the
// input is not a gradient file at all, reported as a *FormatError:
// either the header line is missing or no segment count can be parsed.
func ParseGGR(content []byte, id string) (*Resource, error) {
	p := newGGRParser(content, id)

	if err := p.header(); err != nil {
		return nil, err
	}
	name := p.name()
	count, err := p.count()
	if err != nil {
		return nil, err
	}

	return &Resource{
		ID:       id,
		Name:     name,
		Segments: p.segments(count),
	}, nil
}

// ReadGGR parses a GIMP gradient file from r.
func ReadGGR(r io.Reader, id string) (*Resource, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grad: read gradient: %w", err)
	}
	return ParseGGR(content, id)
}

// IsGGR reports whether content starts like a GIMP gradient file.
// It checks only the header line; use ParseGGR for full validation.
func IsGGR(content []byte) bool {
	return newGGRParser(content, "").header() == nil
}

// sourceLine is one significant line of the input together with its
// original position, for diagnostics.
type sourceLine struct {
	text string
	num  int // 1-based
}

// ggrParser is a cursor over the significant lines of a gradient file.
// Parsing advances it through the fixed sequence header, optional name,
// segment count, segment data.
type ggrParser struct {
	id    string
	lines []sourceLine
	pos   int
}

func newGGRParser(content []byte, id string) *ggrParser {
	p := &ggrParser{id: id}
	for i, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p.lines = append(p.lines, sourceLine{text: line, num: i + 1})
	}
	return p
}

// next consumes and returns the current line.
func (p *ggrParser) next() (sourceLine, bool) {
	if p.pos >= len(p.lines) {
		return sourceLine{}, false
	}
	l := p.lines[p.pos]
	p.pos++
	return l, true
}

// peek returns the current line without consuming it.
func (p *ggrParser) peek() (sourceLine, bool) {
	if p.pos >= len(p.lines) {
		return sourceLine{}, false
	}
	return p.lines[p.pos], true
}

// header consumes the header line.
func (p *ggrParser) header() error {
	line, ok := p.next()
	if !ok {
		return &FormatError{Reason: fmt.Sprintf("not a GIMP gradient file (missing %q header)", ggrHeader)}
	}
	if line.text != ggrHeader {
		return &FormatError{Line: line.num, Reason: fmt.Sprintf("not a GIMP gradient file (missing %q header)", ggrHeader)}
	}
	return nil
}

// name consumes the optional name line. When absent, the line is left
// for the count step and the placeholder name is returned.
func (p *ggrParser) name() string {
	line, ok := p.peek()
	if !ok || !strings.HasPrefix(line.text, ggrNamePrefix) {
		return DefaultGradientName
	}
	p.pos++

	name := strings.TrimSpace(strings.TrimPrefix(line.text, ggrNamePrefix))
	if name == "" {
		return DefaultGradientName
	}
	return decodeName(name)
}

// decodeName re-decodes names written by pre-Unicode releases, which
// stored Latin-1 bytes.
func decodeName(name string) string {
	if utf8.ValidString(name) {
		return name
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(name)
	if err != nil {
		return name
	}
	return decoded
}

// count consumes the segment count line.
func (p *ggrParser) count() (int, error) {
	line, ok := p.next()
	if !ok {
		return 0, &FormatError{Reason: "missing segment count"}
	}
	n, err := strconv.Atoi(line.text)
	if err != nil || n < 0 {
		return 0, &FormatError{Line: line.num, Reason: fmt.Sprintf("invalid segment count %q", line.text)}
	}
	return n, nil
}

// segments consumes up to count data lines. The input may run out
// early; the segments read so far are returned without error.
func (p *ggrParser) segments(count int) []Segment {
	segs := make([]Segment, 0, count)
	for range count {
		line, ok := p.next()
		if !ok {
			Logger().Warn("gradient file ends early",
				"id", p.id,
				"declared", count,
				"read", len(segs))
			break
		}
		seg, ok := p.segment(line)
		if !ok {
			continue
		}
		segs = append(segs, seg)
	}
	return segs
}

// segment parses one data line. Lines with too few columns or
// malformed numbers are rejected; the caller skips them.
func (p *ggrParser) segment(line sourceLine) (Segment, bool) {
	fields := strings.Fields(line.text)
	if len(fields) < segmentColumns {
		Logger().Warn("skipping short segment line",
			"id", p.id,
			"line", line.num,
			"columns", len(fields))
		return Segment{}, false
	}

	var vals [segmentColumns]float64
	for i := range vals {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			Logger().Warn("skipping malformed segment line",
				"id", p.id,
				"line", line.num,
				"token", fields[i])
			return Segment{}, false
		}
		vals[i] = v
	}

	blend, ok := blendModeFromIndex(int(vals[11]))
	if !ok {
		Logger().Warn("unknown blend index, using linear",
			"id", p.id,
			"line", line.num,
			"index", int(vals[11]))
	}
	coloring, ok := coloringModeFromIndex(int(vals[12]))
	if !ok {
		Logger().Warn("unknown coloring index, using RGB",
			"id", p.id,
			"line", line.num,
			"index", int(vals[12]))
	}

	return Segment{
		Left:       vals[0],
		Mid:        vals[1],
		Right:      vals[2],
		LeftColor:  Color{R: vals[3], G: vals[4], B: vals[5], A: vals[6]},
		RightColor: Color{R: vals[7], G: vals[8], B: vals[9], A: vals[10]},
		Blend:      blend,
		Coloring:   coloring,
	}, true
}
