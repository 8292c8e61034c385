package grad

import (
	"github.com/rasterpad/grad/internal/blend"
	"github.com/rasterpad/grad/internal/parallel"
)

// Projection selects how a pixel position maps to a gradient position.
type Projection int

const (
	// ProjectionLinear projects pixels onto the start-end axis; t grows
	// from 0 at start to 1 at end.
	ProjectionLinear Projection = iota
	// ProjectionRadial maps distance from start to the gradient
	// position, reaching 1 at distance |end-start|.
	ProjectionRadial
)

// AreaMode selects which pixels a render call may touch.
type AreaMode int

const (
	// AreaWholeLayer fills every pixel of the surface.
	AreaWholeLayer AreaMode = iota
	// AreaSelection restricts the fill to pixels accepted by the
	// request's mask predicate.
	AreaSelection
)

// MaskFunc reports whether the pixel at absolute canvas coordinates
// (x, y) belongs to the affected area. The selection subsystem supplies
// these; see the selection package for rasterized shape masks.
type MaskFunc func(x, y int) bool

// RenderRequest describes a single gradient fill. Requests are
// transient values: build one, pass it to [Renderer.Render], discard
// it.
type RenderRequest struct {
	// Surface is the destination pixel buffer. Render never mutates it;
	// the fill is composited onto a copy.
	Surface *Pixmap

	// OffsetX, OffsetY translate surface coordinates into absolute
	// canvas coordinates, for layers that do not sit at the canvas
	// origin. Projections and the mask predicate both work in absolute
	// coordinates.
	OffsetX int
	OffsetY int

	// Start and End define the gradient axis in canvas coordinates.
	Start Point
	End   Point

	// StartColor and EndColor are the flat two-stop fallback used when
	// Gradient is nil.
	StartColor Color
	EndColor   Color

	// Reverse flips the gradient direction.
	Reverse bool

	// Opacity scales the source alpha, in percent [0, 100].
	Opacity int

	// Projection selects linear or radial mapping.
	Projection Projection

	// Area selects whole-layer or selection-masked filling.
	Area AreaMode

	// Mask is the inclusion predicate, consulted only when Area is
	// AreaSelection.
	Mask MaskFunc

	// Gradient, when set, supplies colors through its cached lookup
	// table instead of the two-stop fallback.
	Gradient *Resource
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	luts    *LUTCache
	lutSize int
	workers int
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		lutSize: DefaultLUTSize,
		workers: 1,
	}
}

// WithLUTCache shares a lookup-table cache across renderers. Without
// this option each renderer owns a private cache.
func WithLUTCache(c *LUTCache) RendererOption {
	return func(o *rendererOptions) {
		o.luts = c
	}
}

// WithLUTSize sets the resolution of lookup tables the renderer builds.
// Sizes below 2 fall back to DefaultLUTSize.
func WithLUTSize(size int) RendererOption {
	return func(o *rendererOptions) {
		o.lutSize = size
	}
}

// WithWorkers sets the number of goroutines used to fill rows. The
// default is 1: fully synchronous rendering. Higher values split the
// surface into row ranges; each pixel is still written exactly once
// from read-only inputs, so the output is identical to the synchronous
// path.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// Renderer composites gradient fills onto pixel surfaces.
//
// A Renderer is safe for concurrent use; its only mutable state is the
// lookup-table cache, which synchronizes internally.
type Renderer struct {
	luts    *LUTCache
	lutSize int
	workers int
}

// NewRenderer creates a renderer.
//
// Example:
//
//	// Default: synchronous, private LUT cache.
//	r := grad.NewRenderer()
//
//	// Shared cache and row-parallel fills:
//	luts := grad.NewLUTCache(0)
//	r := grad.NewRenderer(grad.WithLUTCache(luts), grad.WithWorkers(4))
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.luts == nil {
		o.luts = NewLUTCache(0)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return &Renderer{
		luts:    o.luts,
		lutSize: o.lutSize,
		workers: o.workers,
	}
}

// Render composites the requested gradient fill and returns the result
// as a new surface; the request's surface is left untouched. A nil
// surface yields nil.
//
// Render has no error path. Degenerate geometry (start equal to end),
// empty gradients, out-of-range opacity, and masked-out pixels all
// resolve to defined fallbacks: a zero-length axis projects every pixel
// to t = 0, an empty gradient samples as transparent, and skipped
// pixels keep their destination bytes.
func (r *Renderer) Render(req RenderRequest) *Pixmap {
	if req.Surface == nil {
		return nil
	}

	out := req.Surface.Clone()
	h := out.Height()
	if out.Width() == 0 || h == 0 {
		return out
	}

	var lut *LUT
	if req.Gradient != nil {
		lut = r.luts.Get(req.Gradient, r.lutSize)
	}

	job := &renderJob{
		out:     out,
		req:     &req,
		lut:     lut,
		opacity: opacityFraction(req.Opacity),
		proj:    newProjector(&req),
		masked:  req.Area == AreaSelection && req.Mask != nil,
	}

	parallel.Rows(h, r.workers, job.run)
	return out
}

// renderJob carries the immutable state shared by row workers during
// one render call.
type renderJob struct {
	out     *Pixmap
	req     *RenderRequest
	lut     *LUT
	opacity float64
	proj    projector
	masked  bool
}

// run fills the rows [y0, y1).
func (j *renderJob) run(y0, y1 int) {
	w := j.out.Width()

	for y := y0; y < y1; y++ {
		ay := y + j.req.OffsetY
		for x := 0; x < w; x++ {
			ax := x + j.req.OffsetX
			if j.masked && !j.req.Mask(ax, ay) {
				continue
			}

			t := j.proj.at(float64(ax), float64(ay))

			var src Color
			if j.lut != nil {
				src = j.lut.At(t)
			} else {
				src = j.req.StartColor.Lerp(j.req.EndColor, t)
			}
			src.A *= j.opacity
			if src.A <= 0 {
				// Compositing a fully transparent source is the
				// identity; keep the destination bytes untouched.
				continue
			}

			dst := j.out.GetPixel(x, y)
			res := blend.SourceOver(
				blend.RGBA{R: src.R, G: src.G, B: src.B, A: src.A},
				blend.RGBA{R: dst.R, G: dst.G, B: dst.B, A: dst.A},
			)
			j.out.SetPixel(x, y, Color{R: res.R, G: res.G, B: res.B, A: res.A})
		}
	}
}

// minAxisLenSq is the squared axis length below which a projection
// collapses to t = 0.
const minAxisLenSq = 1e-12

// projector holds the precomputed gradient axis for one render call.
type projector struct {
	start   Point
	axis    Point
	lenSq   float64
	length  float64
	radial  bool
	reverse bool
}

func newProjector(req *RenderRequest) projector {
	axis := req.End.Sub(req.Start)
	return projector{
		start:   req.Start,
		axis:    axis,
		lenSq:   axis.LengthSquared(),
		length:  axis.Length(),
		radial:  req.Projection == ProjectionRadial,
		reverse: req.Reverse,
	}
}

// at returns the gradient position for the absolute canvas point
// (x, y).
func (p *projector) at(x, y float64) float64 {
	var t float64
	if p.lenSq >= minAxisLenSq {
		rel := Pt(x, y).Sub(p.start)
		if p.radial {
			t = clamp01(rel.Length() / p.length)
		} else {
			t = clamp01(rel.Dot(p.axis) / p.lenSq)
		}
	}
	if p.reverse {
		t = 1 - t
	}
	return t
}

// opacityFraction converts an opacity percentage [0, 100] to a [0, 1]
// fraction, clamping out-of-range values.
func opacityFraction(pct int) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 1
	}
	return float64(pct) / 100
}
