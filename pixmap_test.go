package grad

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"normal", 10, 20, 10, 20},
		{"zero", 0, 0, 0, 0},
		{"negative clamps", -5, 8, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPixmap(tt.w, tt.h)
			if p.Width() != tt.wantW || p.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", p.Width(), p.Height(), tt.wantW, tt.wantH)
			}
			if len(p.Data()) != tt.wantW*tt.wantH*4 {
				t.Errorf("len(Data()) = %d, want %d", len(p.Data()), tt.wantW*tt.wantH*4)
			}
		})
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	p := NewPixmap(4, 4)

	c := RGBA(0.8, 0.4, 0.2, 0.6)
	p.SetPixel(2, 1, c)
	got := p.GetPixel(2, 1)
	if !colorsEqual(got, c, 0.01) {
		t.Errorf("GetPixel(2, 1) = %v, want %v", got, c)
	}

	// Out-of-bounds writes are dropped, reads come back transparent.
	p.SetPixel(-1, 0, White)
	p.SetPixel(4, 0, White)
	if got := p.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %v, want transparent", got)
	}
	if got := p.GetPixel(0, 4); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %v, want transparent", got)
	}
}

func TestPixmap_Clear(t *testing.T) {
	p := NewPixmap(3, 3)
	p.Clear(Yellow)

	for y := range 3 {
		for x := range 3 {
			if got := p.GetPixel(x, y); !colorsEqual(got, Yellow, 0.01) {
				t.Errorf("pixel (%d, %d) = %v, want yellow", x, y, got)
			}
		}
	}
}

func TestPixmap_Clone(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(0, 0, Red)

	q := p.Clone()
	q.SetPixel(0, 0, Blue)

	if got := p.GetPixel(0, 0); !colorsEqual(got, Red, 0.01) {
		t.Errorf("original changed after editing the clone: %v", got)
	}
	if got := q.GetPixel(0, 0); !colorsEqual(got, Blue, 0.01) {
		t.Errorf("clone pixel = %v, want blue", got)
	}
}

func TestPixmap_ToImage(t *testing.T) {
	p := NewPixmap(2, 1)
	p.SetPixel(0, 0, RGBA(1, 0, 0, 0.5))
	p.SetPixel(1, 0, Green)

	img := p.ToImage()
	if img.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}

	// The image shares the non-premultiplied byte layout.
	want := color.NRGBA{R: 255, A: 128}
	if got := img.NRGBAAt(0, 0); got != want {
		t.Errorf("NRGBAAt(0, 0) = %v, want %v", got, want)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 128})

	p := FromImage(src)
	if p.Width() != 2 || p.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", p.Width(), p.Height())
	}
	if got := p.GetPixel(0, 0); !colorsEqual(got, Red, 0.01) {
		t.Errorf("GetPixel(0, 0) = %v, want red", got)
	}
	if got := p.GetPixel(1, 1); !colorsEqual(got, RGBA(0, 0, 1, 0.5), 0.01) {
		t.Errorf("GetPixel(1, 1) = %v, want half-alpha blue", got)
	}
}

func TestPixmap_ImageInterface(t *testing.T) {
	var _ image.Image = (*Pixmap)(nil)

	p := NewPixmap(3, 2)
	p.SetPixel(1, 1, Magenta)

	if p.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", p.Bounds())
	}
	if p.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
	r, g, b, a := p.At(1, 1).RGBA()
	wr, wg, wb, wa := Magenta.NRGBA().RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("At(1, 1) = (%d, %d, %d, %d), want (%d, %d, %d, %d)", r, g, b, a, wr, wg, wb, wa)
	}
}

func TestPixmap_SavePNG(t *testing.T) {
	p := NewPixmap(4, 4)
	p.Clear(Cyan)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written file: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}

	if err := p.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded, want error")
	}
}
