package grad

// DefaultGradientName is used for gradient files that carry no Name
// line.
const DefaultGradientName = "Unnamed gradient"

// Resource is a named gradient: an ordered list of segments covering
// the parameter range [0, 1].
//
// Well-formed resources have segments ordered by Left ascending, tiling
// [0, 1] without gaps or overlaps. This is not enforced; legacy files
// that break it still load, and evaluation resolves overlap by first
// match (see [Resource.ColorAt]).
type Resource struct {
	// ID identifies the gradient within a session. Lookup-table caching
	// is keyed by ID, so callers that mutate Segments must invalidate
	// the cache entry for this ID.
	ID string

	// Name is the human-readable name from the gradient file.
	Name string

	// Segments in file order.
	Segments []Segment

	// Tags are optional labels for organizing gradient collections.
	Tags []string
}

// New returns a gradient with a single linear RGB segment running from
// start to end. It is the programmatic equivalent of the simplest
// two-stop gradient file.
func New(id, name string, start, end Color) *Resource {
	return &Resource{
		ID:   id,
		Name: name,
		Segments: []Segment{{
			Left:       0,
			Mid:        0.5,
			Right:      1,
			LeftColor:  start,
			RightColor: end,
			Blend:      BlendLinear,
			Coloring:   ColoringRGB,
		}},
	}
}

// Clone returns a deep copy sharing no segment or tag storage with the
// original.
func (g *Resource) Clone() *Resource {
	out := &Resource{
		ID:   g.ID,
		Name: g.Name,
	}
	if len(g.Segments) > 0 {
		out.Segments = make([]Segment, len(g.Segments))
		copy(out.Segments, g.Segments)
	}
	if len(g.Tags) > 0 {
		out.Tags = make([]string, len(g.Tags))
		copy(out.Tags, g.Tags)
	}
	return out
}
