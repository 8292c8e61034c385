// Command gradrender renders a GIMP gradient file to a PNG image.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/rasterpad/grad"
	"github.com/rasterpad/grad/selection"
)

func main() {
	var (
		input      = flag.String("input", "", "gradient file (.ggr); uses a built-in gradient when empty")
		output     = flag.String("output", "gradient.png", "output file")
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 200, "image height")
		projection = flag.String("projection", "linear", "projection mode: linear or radial")
		reverse    = flag.Bool("reverse", false, "reverse the gradient direction")
		opacity    = flag.Int("opacity", 100, "paint opacity in percent")
		workers    = flag.Int("workers", 1, "number of render workers")
		ellipse    = flag.Bool("ellipse", false, "restrict the fill to an elliptical selection")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		grad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	gradient, err := loadGradient(*input)
	if err != nil {
		log.Fatalf("Failed to load gradient: %v", err)
	}

	req := grad.RenderRequest{
		Surface:  grad.NewPixmap(*width, *height),
		Reverse:  *reverse,
		Opacity:  *opacity,
		Gradient: gradient,
	}

	switch strings.ToLower(*projection) {
	case "linear":
		req.Projection = grad.ProjectionLinear
		req.Start = grad.Pt(0, float64(*height)/2)
		req.End = grad.Pt(float64(*width), float64(*height)/2)
	case "radial":
		req.Projection = grad.ProjectionRadial
		req.Start = grad.Pt(float64(*width)/2, float64(*height)/2)
		req.End = grad.Pt(float64(*width), float64(*height)/2)
	default:
		log.Fatalf("Unknown projection %q (want linear or radial)", *projection)
	}

	if *ellipse {
		mask := selection.Ellipse(*width, *height,
			float64(*width)/2, float64(*height)/2,
			float64(*width)*0.45, float64(*height)*0.45)
		req.Area = grad.AreaSelection
		req.Mask = mask.Predicate()
	}

	renderer := grad.NewRenderer(grad.WithWorkers(*workers))
	result := renderer.Render(req)

	if err := result.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Gradient %q saved to %s (%dx%d)\n", gradient.Name, *output, *width, *height)
}

func loadGradient(path string) (*grad.Resource, error) {
	if path == "" {
		return builtinGradient(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return grad.ReadGGR(f, path)
}

// builtinGradient is a small sunset ramp used when no file is given.
func builtinGradient() *grad.Resource {
	return &grad.Resource{
		ID:   "builtin:sunset",
		Name: "Sunset",
		Segments: []grad.Segment{
			{
				Left: 0, Mid: 0.2, Right: 0.4,
				LeftColor:  grad.RGB(0.05, 0.05, 0.3),
				RightColor: grad.RGB(0.9, 0.45, 0.1),
				Blend:      grad.BlendCurved,
				Coloring:   grad.ColoringRGB,
			},
			{
				Left: 0.4, Mid: 0.55, Right: 0.7,
				LeftColor:  grad.RGB(0.9, 0.45, 0.1),
				RightColor: grad.RGB(1, 0.85, 0.3),
				Blend:      grad.BlendLinear,
				Coloring:   grad.ColoringHSVCCW,
			},
			{
				Left: 0.7, Mid: 0.85, Right: 1,
				LeftColor:  grad.RGB(1, 0.85, 0.3),
				RightColor: grad.RGB(1, 1, 0.9),
				Blend:      grad.BlendSine,
				Coloring:   grad.ColoringRGB,
			},
		},
	}
}
