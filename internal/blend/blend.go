// Package blend implements the alpha-compositing kernel used by the
// gradient renderer.
//
// Colors are non-premultiplied RGBA with float channels in [0, 1],
// matching the surface storage format. Compositing non-premultiplied
// pixels requires the division by output alpha below; callers that
// want premultiplied math should convert at the boundary.
package blend

// RGBA is a non-premultiplied color.
type RGBA struct {
	R, G, B, A float64
}

// SourceOver composites src over dst using standard alpha compositing
// on non-premultiplied channels:
//
//	outA = srcA + dstA*(1-srcA)
//	outC = (srcC*srcA + dstC*dstA*(1-srcA)) / outA
//
// A vanishing output alpha yields transparent black.
func SourceOver(src, dst RGBA) RGBA {
	inv := 1 - src.A
	outA := src.A + dst.A*inv
	if outA < 1e-9 {
		return RGBA{}
	}
	return RGBA{
		R: (src.R*src.A + dst.R*dst.A*inv) / outA,
		G: (src.G*src.A + dst.G*dst.A*inv) / outA,
		B: (src.B*src.A + dst.B*dst.A*inv) / outA,
		A: outA,
	}
}
