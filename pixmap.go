package grad

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular pixel buffer: the destination surface for
// gradient fills. Pixels are stored as non-premultiplied RGBA, 4 bytes
// per pixel, rows top to bottom.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := &Pixmap{
		width:  p.width,
		height: p.height,
		data:   make([]uint8, len(p.data)),
	}
	copy(out.data, p.data)
	return out
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = byte255(c.R)
	p.data[i+1] = byte255(c.G)
	p.data[i+2] = byte255(c.B)
	p.data[i+3] = byte255(c.A)
}

// GetPixel returns the color of a single pixel.
// Coordinates outside the pixmap read as transparent.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	r := byte255(c.R)
	g := byte255(c.G)
	b := byte255(c.B)
	a := byte255(c.A)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.NRGBA sharing no storage.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
