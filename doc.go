// Package grad implements the gradient subsystem of a raster paint
// application: parsing GIMP gradient files (.ggr), evaluating gradients
// as continuous color functions, building fast lookup tables, and
// compositing gradient fills onto pixel surfaces.
//
// # Overview
//
// A gradient is a piecewise color function over the parameter range
// [0, 1]. Each piece (a Segment) carries its own endpoint colors, a
// midpoint that skews the interpolation, an easing curve, and a color
// space rule (plain RGB or directional hue rotation in HSV). Gradients
// are parsed from the legacy GIMP text format with tolerant error
// recovery, so decades-old files with quirks still load.
//
// # Quick Start
//
//	data, _ := os.ReadFile("sunset.ggr")
//	g, err := grad.ParseGGR(data, "sunset")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Evaluate anywhere in [0, 1]...
//	c := g.ColorAt(0.5)
//
//	// ...or fill a surface.
//	surface := grad.NewPixmap(640, 480)
//	r := grad.NewRenderer()
//	out := r.Render(grad.RenderRequest{
//	    Surface:  surface,
//	    Start:    grad.Pt(0, 0),
//	    End:      grad.Pt(640, 0),
//	    Opacity:  100,
//	    Gradient: g,
//	})
//	out.SavePNG("sunset.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Resource, Segment, Color, LUT, Renderer, Pixmap
//   - Subpackages: cache (sharded LRU for lookup tables),
//     selection (rasterized selection masks)
//   - Internal: blend (alpha compositing), parallel (row fan-out)
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Render requests carry a layer offset so surfaces that do not start at
// the canvas origin still project and mask in absolute canvas
// coordinates.
//
// # Concurrency
//
// Parsing, evaluation, and encoding are pure. The only shared mutable
// state is the lookup-table cache, which is safe for concurrent use.
// Rendering is synchronous; row-parallel fills are available through
// WithWorkers and produce output identical to the serial path.
package grad

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 1
)
