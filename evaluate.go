package grad

import "math"

// Numeric guards for degenerate segment geometry.
const (
	// minSegmentWidth is the width below which a segment is treated as a
	// point and the local position pinned to its middle.
	minSegmentWidth = 1e-6

	// midpointEpsilon is how far the normalized midpoint must sit from
	// 0.5 before exponent skewing changes the result.
	midpointEpsilon = 1e-3
)

// ColorAt evaluates the gradient at position t.
//
// t is clamped to [0, 1]. The first segment whose [Left, Right] range
// contains t (endpoints inclusive) supplies the color, so shared
// boundary positions resolve to the earlier segment. For malformed
// segment sets that leave t uncovered, ColorAt returns the last
// segment's right color when t >= 1, and transparent black otherwise.
//
// ColorAt is a pure function: deterministic, no side effects, and safe
// to call concurrently as long as no caller mutates the segments.
func (g *Resource) ColorAt(t float64) Color {
	t = clamp01(t)

	seg := g.segmentAt(t)
	if seg == nil {
		if t >= 1 && len(g.Segments) > 0 {
			return g.Segments[len(g.Segments)-1].RightColor
		}
		return Transparent
	}

	return seg.mix(seg.factor(t))
}

// segmentAt returns the first segment containing t, or nil.
// Segment counts are small, so a linear scan beats maintaining a search
// structure, and it preserves first-match semantics for overlapping
// segments.
func (g *Resource) segmentAt(t float64) *Segment {
	for i := range g.Segments {
		if g.Segments[i].contains(t) {
			return &g.Segments[i]
		}
	}
	return nil
}

// factor computes the eased interpolation factor for t inside the
// segment: normalize to a local [0, 1] position, skew around the
// midpoint, then apply the blend easing curve.
func (s *Segment) factor(t float64) float64 {
	w := s.width()

	local := 0.5
	if w >= minSegmentWidth {
		local = clamp01((t - s.Left) / w)
		local = s.skew(local)
	}

	return ease(s.Blend, local)
}

// skew warps the local position so that the segment midpoint maps to a
// 50% mix: local^(ln 0.5 / ln mid), where mid is the midpoint's
// normalized position. Midpoints at the segment edges would drive the
// exponent to infinity, so mid is kept inside [0.001, 0.999].
func (s *Segment) skew(local float64) float64 {
	mid := (s.Mid - s.Left) / s.width()
	if math.Abs(mid-0.5) < midpointEpsilon {
		return local
	}
	if mid < 0.001 {
		mid = 0.001
	} else if mid > 0.999 {
		mid = 0.999
	}
	return math.Pow(local, math.Log(0.5)/math.Log(mid))
}

// ease applies a blend mode's easing curve to a position in [0, 1].
// Every curve is monotonic with ease(0) = 0 and ease(1) = 1.
func ease(mode BlendMode, x float64) float64 {
	switch mode {
	case BlendCurved:
		return math.Pow(math.Sin(x*math.Pi/2), 1.5)
	case BlendSine:
		return (1 - math.Cos(x*math.Pi)) / 2
	case BlendSphereIncreasing:
		d := 1 - x
		return math.Sqrt(1 - d*d)
	case BlendSphereDecreasing:
		return 1 - math.Sqrt(1-x*x)
	case BlendStep:
		if x >= 0.5 {
			return 1
		}
		return 0
	default:
		return x
	}
}

// mix interpolates between the segment's endpoint colors by factor f.
func (s *Segment) mix(f float64) Color {
	switch s.Coloring {
	case ColoringHSVCCW:
		return mixHSV(s.LeftColor, s.RightColor, f, false)
	case ColoringHSVCW:
		return mixHSV(s.LeftColor, s.RightColor, f, true)
	default:
		return s.LeftColor.Lerp(s.RightColor, f)
	}
}

// mixHSV interpolates in HSV space. Saturation, value, and alpha mix
// linearly; hue travels in the requested rotational direction and wraps
// around at the end of the color wheel.
func mixHSV(lc, rc Color, f float64, clockwise bool) Color {
	lh, ls, lv := lc.HSV()
	rh, rs, rv := rc.HSV()

	// Hue math happens in [0, 1) turns.
	lh /= 360
	rh /= 360

	var h float64
	if clockwise {
		if rh < lh {
			h = lh - (lh-rh)*f
		} else {
			h = lh - (1-(rh-lh))*f
			if h < 0 {
				h++
			}
		}
	} else {
		if lh < rh {
			h = lh + (rh-lh)*f
		} else {
			h = lh + (1-(lh-rh))*f
			if h > 1 {
				h--
			}
		}
	}
	h -= math.Floor(h)

	out := HSV(h*360, ls+(rs-ls)*f, lv+(rv-lv)*f)
	out.A = lc.A + (rc.A-lc.A)*f
	return out
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
