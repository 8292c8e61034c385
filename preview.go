package grad

import (
	"image"

	"golang.org/x/image/draw"
)

const (
	// checkerSize is the side length in pixels of the preview
	// transparency checkerboard squares.
	checkerSize = 8

	checkLight = 0xcc
	checkDark  = 0x99
)

// PreviewStrip renders a horizontal preview swatch of the gradient.
// The gradient is sampled at lookup-table resolution, scaled to the
// requested size with bilinear filtering, and composited over a gray
// checkerboard so partial transparency reads correctly in pickers and
// import dialogs.
//
// The result is always opaque; w and h below 1 are treated as 1.
func PreviewStrip(g *Resource, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	drawCheckerboard(dst)

	src := image.NewNRGBA(image.Rect(0, 0, DefaultLUTSize, 1))
	copy(src.Pix, BuildLUT(g, DefaultLUTSize).Data())

	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// PreviewStripColors is the two-stop variant of PreviewStrip, for the
// legacy flat-color fallback.
func PreviewStripColors(start, end Color, w, h int) *image.RGBA {
	return PreviewStrip(New("", "", start, end), w, h)
}

// drawCheckerboard fills dst with the transparency checkerboard.
func drawCheckerboard(dst *image.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := uint8(checkLight)
			if (x/checkerSize+y/checkerSize)%2 == 1 {
				v = checkDark
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = v
			dst.Pix[i+1] = v
			dst.Pix[i+2] = v
			dst.Pix[i+3] = 0xff
		}
	}
}
