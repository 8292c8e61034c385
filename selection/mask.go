// Package selection rasterizes selection shapes into per-pixel coverage
// masks. A mask restricts a gradient fill to the selected region of the
// canvas: rectangle, ellipse and polygon selections are scan-converted
// with antialiasing and exposed as a predicate for the renderer.
package selection

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/rasterpad/grad"
)

// coverageThreshold is the minimum coverage for a pixel to count as
// selected. Antialiased edges select pixels that are at least half
// covered.
const coverageThreshold = 128

// Mask holds per-pixel selection coverage over a canvas-sized region.
// Coverage ranges from 0 (outside) to 255 (fully selected); values in
// between occur along antialiased shape edges.
//
// Masks are immutable after construction and safe for concurrent reads.
type Mask struct {
	width  int
	height int
	cov    []uint8
}

// Rectangle creates a mask covering the given rectangle within a
// width x height canvas. Parts of the rectangle outside the canvas are
// clipped.
func Rectangle(width, height int, r image.Rectangle) *Mask {
	m := newMask(width, height)
	if m.empty() || r.Empty() {
		return m
	}

	f := newShapeFiller(width, height)
	f.filler.Start(fixedPoint(float64(r.Min.X), float64(r.Min.Y)))
	f.filler.Line(fixedPoint(float64(r.Max.X), float64(r.Min.Y)))
	f.filler.Line(fixedPoint(float64(r.Max.X), float64(r.Max.Y)))
	f.filler.Line(fixedPoint(float64(r.Min.X), float64(r.Max.Y)))
	f.filler.Stop(true)
	f.renderInto(m)
	return m
}

// Ellipse creates a mask covering an axis-aligned ellipse centered at
// (cx, cy) with radii rx and ry, within a width x height canvas.
func Ellipse(width, height int, cx, cy, rx, ry float64) *Mask {
	m := newMask(width, height)
	if m.empty() || rx <= 0 || ry <= 0 {
		return m
	}

	// Approximate each quarter arc with a cubic Bezier curve.
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k

	f := newShapeFiller(width, height)
	f.filler.Start(fixedPoint(cx+rx, cy))
	f.filler.CubeBezier(fixedPoint(cx+rx, cy+oy), fixedPoint(cx+ox, cy+ry), fixedPoint(cx, cy+ry))
	f.filler.CubeBezier(fixedPoint(cx-ox, cy+ry), fixedPoint(cx-rx, cy+oy), fixedPoint(cx-rx, cy))
	f.filler.CubeBezier(fixedPoint(cx-rx, cy-oy), fixedPoint(cx-ox, cy-ry), fixedPoint(cx, cy-ry))
	f.filler.CubeBezier(fixedPoint(cx+ox, cy-ry), fixedPoint(cx+rx, cy-oy), fixedPoint(cx+rx, cy))
	f.filler.Stop(true)
	f.renderInto(m)
	return m
}

// Polygon creates a mask covering the closed polygon described by pts,
// within a width x height canvas. Fewer than three points select
// nothing.
func Polygon(width, height int, pts []grad.Point) *Mask {
	m := newMask(width, height)
	if m.empty() || len(pts) < 3 {
		return m
	}

	f := newShapeFiller(width, height)
	f.filler.Start(fixedPoint(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		f.filler.Line(fixedPoint(p.X, p.Y))
	}
	f.filler.Stop(true)
	f.renderInto(m)
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.height
}

// Coverage returns the selection coverage at (x, y), from 0 to 255.
// Coordinates outside the mask return 0.
func (m *Mask) Coverage(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0
	}
	return m.cov[y*m.width+x]
}

// Contains reports whether (x, y) is selected, meaning at least half
// covered by the shape.
func (m *Mask) Contains(x, y int) bool {
	return m.Coverage(x, y) >= coverageThreshold
}

// Predicate returns the mask as a renderer mask function.
func (m *Mask) Predicate() grad.MaskFunc {
	return m.Contains
}

// Bounds returns the tight bounding box of all selected pixels.
// An empty selection returns the zero rectangle.
func (m *Mask) Bounds() image.Rectangle {
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	for y := range m.height {
		row := m.cov[y*m.width : (y+1)*m.width]
		for x, c := range row {
			if c < coverageThreshold {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Empty reports whether no pixel is selected.
func (m *Mask) Empty() bool {
	for _, c := range m.cov {
		if c >= coverageThreshold {
			return false
		}
	}
	return true
}

func newMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		cov:    make([]uint8, width*height),
	}
}

func (m *Mask) empty() bool {
	return m.width == 0 || m.height == 0
}

// shapeFiller wraps a rasterx scan converter that renders shapes into
// an offscreen image whose alpha channel becomes the coverage buffer.
type shapeFiller struct {
	img    *image.RGBA
	filler *rasterx.Filler
}

func newShapeFiller(width, height int) *shapeFiller {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	scanner.SetColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	return &shapeFiller{
		img:    img,
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

// renderInto draws the accumulated path and copies the resulting alpha
// coverage into the mask.
func (f *shapeFiller) renderInto(m *Mask) {
	f.filler.Draw()
	for i := range m.cov {
		m.cov[i] = f.img.Pix[i*4+3]
	}
}

// fixedPoint converts canvas coordinates to the 26.6 fixed point
// format used by the scan converter.
func fixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}
