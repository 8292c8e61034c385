package grad

import (
	"math"
	"testing"
)

// twoStepGradient builds the gradient used across the evaluator tests:
// red to green over [0, 0.5], green to blue over [0.5, 1], linear RGB
// blends with centered midpoints.
func twoStepGradient() *Resource {
	return &Resource{
		ID:   "test:traffic",
		Name: "Traffic",
		Segments: []Segment{
			{Left: 0, Mid: 0.25, Right: 0.5, LeftColor: Red, RightColor: Green},
			{Left: 0.5, Mid: 0.75, Right: 1, LeftColor: Green, RightColor: Blue},
		},
	}
}

// rampGradient builds a single segment spanning [0, 1] with the given
// blend and coloring modes.
func rampGradient(blend BlendMode, coloring ColoringMode, lc, rc Color) *Resource {
	return &Resource{
		ID: "test:ramp",
		Segments: []Segment{
			{Left: 0, Mid: 0.5, Right: 1, LeftColor: lc, RightColor: rc, Blend: blend, Coloring: coloring},
		},
	}
}

func TestColorAt_TwoSegments(t *testing.T) {
	g := twoStepGradient()

	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"clamped below", -1, Red},
		{"left edge", 0, Red},
		{"first middle", 0.25, RGBA(0.5, 0.5, 0, 1)},
		{"shared boundary goes to first segment", 0.5, Green},
		{"second middle", 0.75, RGBA(0, 0.5, 0.5, 1)},
		{"right edge", 1, Blue},
		{"clamped above", 2, Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.t)
			if !colorsEqual(got, tt.want, 0.001) {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColorAt_Fallbacks(t *testing.T) {
	empty := &Resource{ID: "test:empty"}
	if got := empty.ColorAt(0.5); got != Transparent {
		t.Errorf("empty gradient ColorAt(0.5) = %v, want transparent", got)
	}
	if got := empty.ColorAt(1); got != Transparent {
		t.Errorf("empty gradient ColorAt(1) = %v, want transparent", got)
	}

	// Coverage stops at 0.5: positions beyond it are uncovered.
	partial := &Resource{
		ID: "test:partial",
		Segments: []Segment{
			{Left: 0, Mid: 0.25, Right: 0.5, LeftColor: Red, RightColor: Green},
		},
	}
	if got := partial.ColorAt(0.75); got != Transparent {
		t.Errorf("uncovered ColorAt(0.75) = %v, want transparent", got)
	}
	if got := partial.ColorAt(1); !colorsEqual(got, Green, 0.001) {
		t.Errorf("uncovered ColorAt(1) = %v, want last right color", got)
	}

	gapped := &Resource{
		ID: "test:gapped",
		Segments: []Segment{
			{Left: 0, Mid: 0.2, Right: 0.4, LeftColor: Red, RightColor: Red},
			{Left: 0.6, Mid: 0.8, Right: 1, LeftColor: Blue, RightColor: Blue},
		},
	}
	if got := gapped.ColorAt(0.5); got != Transparent {
		t.Errorf("gap ColorAt(0.5) = %v, want transparent", got)
	}
	if got := gapped.ColorAt(0.3); !colorsEqual(got, Red, 0.001) {
		t.Errorf("gap ColorAt(0.3) = %v, want red", got)
	}
	if got := gapped.ColorAt(0.7); !colorsEqual(got, Blue, 0.001) {
		t.Errorf("gap ColorAt(0.7) = %v, want blue", got)
	}
}

func TestColorAt_FirstMatchWins(t *testing.T) {
	g := &Resource{
		ID: "test:overlap",
		Segments: []Segment{
			{Left: 0, Mid: 0.3, Right: 0.6, LeftColor: Red, RightColor: Red},
			{Left: 0.4, Mid: 0.7, Right: 1, LeftColor: Blue, RightColor: Blue},
		},
	}
	if got := g.ColorAt(0.5); !colorsEqual(got, Red, 0.001) {
		t.Errorf("overlapping ColorAt(0.5) = %v, want first segment's red", got)
	}
}

func TestColorAt_ZeroWidthSegment(t *testing.T) {
	g := &Resource{
		ID: "test:point",
		Segments: []Segment{
			{Left: 0.5, Mid: 0.5, Right: 0.5, LeftColor: Black, RightColor: White},
		},
	}

	// A degenerate segment evaluates at its middle: a 50% mix.
	got := g.ColorAt(0.5)
	want := RGBA(0.5, 0.5, 0.5, 1)
	if !colorsEqual(got, want, 0.001) {
		t.Errorf("ColorAt(0.5) = %v, want %v", got, want)
	}

	if got := g.ColorAt(0.2); got != Transparent {
		t.Errorf("ColorAt(0.2) = %v, want transparent", got)
	}
}

func TestColorAt_MidpointSkew(t *testing.T) {
	// Midpoint at 0.25 gives the exponent ln(0.5)/ln(0.25) = 0.5, so the
	// position is square-rooted before blending.
	g := &Resource{
		ID: "test:skew",
		Segments: []Segment{
			{Left: 0, Mid: 0.25, Right: 1, LeftColor: Black, RightColor: White},
		},
	}

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"midpoint maps to half mix", 0.25, 0.5},
		{"before midpoint", 0.0625, 0.25},
		{"after midpoint", 0.5, math.Sqrt(0.5)},
		{"left endpoint", 0, 0},
		{"right endpoint", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.t)
			want := RGBA(tt.want, tt.want, tt.want, 1)
			if !colorsEqual(got, want, 0.001) {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.t, got, want)
			}
		})
	}
}

func TestColorAt_MidpointClampedAtEdges(t *testing.T) {
	// Midpoint on the left edge clamps to 0.001: a strong pull toward
	// the right color.
	leftEdge := &Resource{
		ID: "test:midleft",
		Segments: []Segment{
			{Left: 0, Mid: 0, Right: 1, LeftColor: Black, RightColor: White},
		},
	}
	got := leftEdge.ColorAt(0.5)
	want := math.Pow(0.5, math.Log(0.5)/math.Log(0.001))
	if !colorsEqual(got, RGBA(want, want, want, 1), 0.001) {
		t.Errorf("ColorAt(0.5) with left-edge midpoint = %v, want %v", got, want)
	}

	// Midpoint on the right edge clamps to 0.999: the mix stays near the
	// left color until the very end.
	rightEdge := &Resource{
		ID: "test:midright",
		Segments: []Segment{
			{Left: 0, Mid: 1, Right: 1, LeftColor: Black, RightColor: White},
		},
	}
	got = rightEdge.ColorAt(0.5)
	if !colorsEqual(got, Black, 0.001) {
		t.Errorf("ColorAt(0.5) with right-edge midpoint = %v, want near black", got)
	}
}

func TestColorAt_BlendModes(t *testing.T) {
	tests := []struct {
		name  string
		blend BlendMode
		t     float64
		want  float64
	}{
		{"linear quarter", BlendLinear, 0.25, 0.25},
		{"linear half", BlendLinear, 0.5, 0.5},
		{"curved half", BlendCurved, 0.5, math.Pow(math.Sin(math.Pi/4), 1.5)},
		{"sine quarter", BlendSine, 0.25, (1 - math.Cos(math.Pi/4)) / 2},
		{"sine half", BlendSine, 0.5, 0.5},
		{"sphere increasing half", BlendSphereIncreasing, 0.5, math.Sqrt(0.75)},
		{"sphere decreasing half", BlendSphereDecreasing, 0.5, 1 - math.Sqrt(0.75)},
		{"step below midpoint", BlendStep, 0.499, 0},
		{"step at midpoint", BlendStep, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := rampGradient(tt.blend, ColoringRGB, Black, White)
			got := g.ColorAt(tt.t)
			want := RGBA(tt.want, tt.want, tt.want, 1)
			if !colorsEqual(got, want, 0.001) {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.t, got, want)
			}
		})
	}
}

func TestColorAt_BlendModeEndpoints(t *testing.T) {
	modes := []BlendMode{
		BlendLinear, BlendCurved, BlendSine,
		BlendSphereIncreasing, BlendSphereDecreasing, BlendStep,
	}
	for _, mode := range modes {
		g := rampGradient(mode, ColoringRGB, Red, Blue)
		if got := g.ColorAt(0); !colorsEqual(got, Red, 0.001) {
			t.Errorf("mode %d: ColorAt(0) = %v, want left color", mode, got)
		}
		if got := g.ColorAt(1); !colorsEqual(got, Blue, 0.001) {
			t.Errorf("mode %d: ColorAt(1) = %v, want right color", mode, got)
		}
	}
}

func TestEase_SphereMirror(t *testing.T) {
	// The two sphere curves mirror each other around the segment center.
	for _, x := range []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1} {
		inc := ease(BlendSphereIncreasing, 1-x)
		dec := ease(BlendSphereDecreasing, x)
		if math.Abs(dec-(1-inc)) > 1e-12 {
			t.Errorf("at x=%v: decreasing=%v, 1-increasing(1-x)=%v", x, dec, 1-inc)
		}
	}
}

func TestColorAt_HSV(t *testing.T) {
	tests := []struct {
		name     string
		coloring ColoringMode
		lc, rc   Color
		t        float64
		want     Color
	}{
		{"ccw red to blue passes green", ColoringHSVCCW, Red, Blue, 0.5, Green},
		{"cw red to blue passes magenta", ColoringHSVCW, Red, Blue, 0.5, Magenta},
		{"ccw equal hues sweep the wheel", ColoringHSVCCW, Red, Red, 0.5, Cyan},
		{"cw equal hues sweep the wheel", ColoringHSVCW, Red, Red, 0.5, Cyan},
		{"ccw equal hues quarter turn", ColoringHSVCCW, Red, Red, 0.25, HSV(90, 1, 1)},
		{"cw equal hues quarter turn", ColoringHSVCW, Red, Red, 0.25, HSV(270, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := rampGradient(BlendLinear, tt.coloring, tt.lc, tt.rc)
			got := g.ColorAt(tt.t)
			if !colorsEqual(got, tt.want, 0.001) {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColorAt_HSVEndpoints(t *testing.T) {
	for _, coloring := range []ColoringMode{ColoringHSVCCW, ColoringHSVCW} {
		g := rampGradient(BlendLinear, coloring, Yellow, Cyan)
		if got := g.ColorAt(0); !colorsEqual(got, Yellow, 0.001) {
			t.Errorf("coloring %d: ColorAt(0) = %v, want left color", coloring, got)
		}
		if got := g.ColorAt(1); !colorsEqual(got, Cyan, 0.001) {
			t.Errorf("coloring %d: ColorAt(1) = %v, want right color", coloring, got)
		}
	}
}

func TestColorAt_HSVAlpha(t *testing.T) {
	g := rampGradient(BlendLinear, ColoringHSVCCW, RGBA(1, 0, 0, 1), RGBA(0, 0, 1, 0))
	got := g.ColorAt(0.5)
	if math.Abs(got.A-0.5) > 0.001 {
		t.Errorf("ColorAt(0.5).A = %v, want 0.5", got.A)
	}
}

func BenchmarkColorAt(b *testing.B) {
	g := twoStepGradient()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ColorAt(float64(i%1000) / 999)
	}
}

func BenchmarkColorAt_HSV(b *testing.B) {
	g := rampGradient(BlendCurved, ColoringHSVCCW, Red, Blue)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ColorAt(float64(i%1000) / 999)
	}
}
