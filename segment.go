package grad

// BlendMode selects the easing curve applied to a segment's
// interpolation factor.
//
// The constant order matches the integer indices used by the GIMP
// gradient file format.
type BlendMode int

const (
	// BlendLinear interpolates at a constant rate.
	BlendLinear BlendMode = iota
	// BlendCurved eases smoothly from the left endpoint.
	BlendCurved
	// BlendSine eases in and out along a cosine wave.
	BlendSine
	// BlendSphereIncreasing rises steeply, then levels off.
	BlendSphereIncreasing
	// BlendSphereDecreasing starts flat, then falls away steeply.
	BlendSphereDecreasing
	// BlendStep jumps from the left color to the right color at the
	// segment midpoint.
	BlendStep
)

// ColoringMode selects the color space a segment interpolates in.
//
// The constant order matches the integer indices used by the GIMP
// gradient file format.
type ColoringMode int

const (
	// ColoringRGB interpolates each RGB channel independently.
	ColoringRGB ColoringMode = iota
	// ColoringHSVCCW interpolates in HSV, rotating hue counter-clockwise
	// (increasing hue, wrapping past 360).
	ColoringHSVCCW
	// ColoringHSVCW interpolates in HSV, rotating hue clockwise
	// (decreasing hue, wrapping past 0).
	ColoringHSVCW
)

// blendModeFromIndex maps a file blend index to a BlendMode.
// The second result is false for out-of-range indices, which map to
// BlendLinear.
func blendModeFromIndex(i int) (BlendMode, bool) {
	if i < int(BlendLinear) || i > int(BlendStep) {
		return BlendLinear, false
	}
	return BlendMode(i), true
}

// coloringModeFromIndex maps a file coloring index to a ColoringMode.
// The second result is false for out-of-range indices, which map to
// ColoringRGB.
func coloringModeFromIndex(i int) (ColoringMode, bool) {
	if i < int(ColoringRGB) || i > int(ColoringHSVCW) {
		return ColoringRGB, false
	}
	return ColoringMode(i), true
}

// Segment is one piece of a gradient's [0, 1] parameter range.
//
// Left, Mid, and Right are positions with Left <= Mid <= Right. The
// segment covers [Left, Right]; Mid shifts where the 50% mix between
// the endpoint colors falls.
type Segment struct {
	Left  float64
	Mid   float64
	Right float64

	LeftColor  Color
	RightColor Color

	Blend    BlendMode
	Coloring ColoringMode
}

// contains reports whether t falls inside the segment, endpoints
// included.
func (s *Segment) contains(t float64) bool {
	return t >= s.Left && t <= s.Right
}

// width returns the span covered by the segment.
func (s *Segment) width() float64 {
	return s.Right - s.Left
}
