package grad

import (
	"fmt"
	"io"
	"strconv"
)

// EncodeGGR writes the gradient to w in GIMP gradient format.
//
// The output uses the current 15-column segment layout (the two
// trailing endpoint color-type columns are written as zero) and parses
// back with ParseGGR to an equivalent resource.
func EncodeGGR(w io.Writer, g *Resource) error {
	if _, err := w.Write(AppendGGR(nil, g)); err != nil {
		return fmt.Errorf("grad: write gradient: %w", err)
	}
	return nil
}

// AppendGGR appends the GIMP gradient encoding of g to dst and returns
// the extended buffer.
func AppendGGR(dst []byte, g *Resource) []byte {
	dst = append(dst, ggrHeader...)
	dst = append(dst, '\n')

	name := g.Name
	if name == "" {
		name = DefaultGradientName
	}
	dst = append(dst, ggrNamePrefix...)
	dst = append(dst, ' ')
	dst = append(dst, name...)
	dst = append(dst, '\n')

	dst = strconv.AppendInt(dst, int64(len(g.Segments)), 10)
	dst = append(dst, '\n')

	for i := range g.Segments {
		dst = appendSegment(dst, &g.Segments[i])
	}
	return dst
}

// appendSegment writes one segment data line.
func appendSegment(dst []byte, s *Segment) []byte {
	dst = appendFloat(dst, s.Left)
	dst = append(dst, ' ')
	dst = appendFloat(dst, s.Mid)
	dst = append(dst, ' ')
	dst = appendFloat(dst, s.Right)
	for _, c := range [2]Color{s.LeftColor, s.RightColor} {
		dst = append(dst, ' ')
		dst = appendFloat(dst, c.R)
		dst = append(dst, ' ')
		dst = appendFloat(dst, c.G)
		dst = append(dst, ' ')
		dst = appendFloat(dst, c.B)
		dst = append(dst, ' ')
		dst = appendFloat(dst, c.A)
	}
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(s.Blend), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(s.Coloring), 10)
	// Endpoint color types (fixed vs. foreground/background); always
	// fixed here.
	dst = append(dst, " 0 0\n"...)
	return dst
}

// appendFloat writes a float in the six-decimal form GIMP uses.
func appendFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'f', 6, 64)
}
