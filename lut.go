package grad

import (
	"github.com/rasterpad/grad/cache"
)

// DefaultLUTSize is the sampling resolution used when a caller does not
// pick one. 1024 entries keep the quantization step on screen-sized
// fills below one 8-bit level.
const DefaultLUTSize = 1024

// LUT is a fixed-resolution sampling of a gradient: size RGBA entries
// in a flat byte table, non-premultiplied, 4 bytes per entry.
type LUT struct {
	size int
	data []uint8
}

// BuildLUT samples the gradient into a table with the given number of
// entries. Sizes below 2 fall back to DefaultLUTSize.
func BuildLUT(g *Resource, size int) *LUT {
	if size < 2 {
		size = DefaultLUTSize
	}
	l := &LUT{
		size: size,
		data: make([]uint8, size*4),
	}
	for i := range size {
		c := g.ColorAt(float64(i) / float64(size-1))
		o := i * 4
		l.data[o+0] = byte255(c.R)
		l.data[o+1] = byte255(c.G)
		l.data[o+2] = byte255(c.B)
		l.data[o+3] = byte255(c.A)
	}
	return l
}

// Size returns the number of entries.
func (l *LUT) Size() int {
	return l.size
}

// Data returns the underlying byte table (RGBA order, 4 bytes per
// entry). Callers must not modify it; renderers may be reading it
// concurrently.
func (l *LUT) Data() []uint8 {
	return l.data
}

// At returns the color at position t, clamped to [0, 1].
func (l *LUT) At(t float64) Color {
	i := l.index(t)
	return Color{
		R: float64(l.data[i+0]) / 255,
		G: float64(l.data[i+1]) / 255,
		B: float64(l.data[i+2]) / 255,
		A: float64(l.data[i+3]) / 255,
	}
}

// Sample returns the 8-bit channels at position t, clamped to [0, 1].
func (l *LUT) Sample(t float64) (r, g, b, a uint8) {
	i := l.index(t)
	return l.data[i+0], l.data[i+1], l.data[i+2], l.data[i+3]
}

func (l *LUT) index(t float64) int {
	return int(clamp01(t)*float64(l.size-1)) * 4
}

// LUTCache holds built lookup tables keyed by gradient ID.
//
// Entries are built lazily on first use. A rebuild after invalidation
// always allocates a fresh table, never mutates one in place, so
// callers holding a *LUT keep reading a consistent snapshot.
//
// The cache does not observe segment mutation: callers that change a
// gradient's segments must call Invalidate with its ID.
//
// LUTCache is safe for concurrent use.
type LUTCache struct {
	tables *cache.ShardedCache[string, *LUT]
}

// NewLUTCache creates a cache holding up to capacity tables per shard.
// If capacity <= 0, cache.DefaultCapacity is used.
func NewLUTCache(capacity int) *LUTCache {
	return &LUTCache{
		tables: cache.NewSharded[string, *LUT](capacity, cache.StringHasher),
	}
}

// Get returns the cached table for g, building one with the given size
// on first use. The size applies only when the table is built; later
// calls for the same ID return the existing table whatever their size
// argument.
func (c *LUTCache) Get(g *Resource, size int) *LUT {
	return c.tables.GetOrCreate(g.ID, func() *LUT {
		Logger().Debug("building gradient lookup table",
			"id", g.ID,
			"size", size)
		return BuildLUT(g, size)
	})
}

// Invalidate drops the cached table for a gradient ID, forcing a
// rebuild on next use. It reports whether a table was present.
func (c *LUTCache) Invalidate(id string) bool {
	return c.tables.Delete(id)
}

// Clear drops all cached tables.
func (c *LUTCache) Clear() {
	c.tables.Clear()
}

// Len returns the number of cached tables.
func (c *LUTCache) Len() int {
	return c.tables.Len()
}

// Stats returns hit, miss, and eviction counters for the underlying
// cache.
func (c *LUTCache) Stats() cache.Stats {
	return c.tables.Stats()
}
