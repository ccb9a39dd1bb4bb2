package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/pathanim"
)

var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func horizontal() *pathanim.Path {
	p := pathanim.NewPath()
	p.MoveTo(10, 50)
	p.LineTo(90, 50)
	return p
}

func TestRender_Empty(t *testing.T) {
	img := Render(nil, nil, Options{Width: 20, Height: 10})

	if got := img.Bounds().Dx(); got != 20 {
		t.Errorf("width = %d, want 20", got)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if got := img.RGBAAt(x, y); got != white {
				t.Fatalf("pixel (%d,%d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestRender_Stroke(t *testing.T) {
	img := Render(horizontal(), nil, Options{Width: 100, Height: 100})

	if got := img.RGBAAt(50, 50); got == white || got.B <= got.R {
		t.Errorf("pixel on the path = %v, want stroke colour", got)
	}
	if got := img.RGBAAt(50, 10); got != white {
		t.Errorf("pixel off the path = %v, want background", got)
	}
}

func TestRender_Markers(t *testing.T) {
	m, err := pathanim.NewMotion(horizontal(), pathanim.DefaultAnimation())
	if err != nil {
		t.Fatalf("NewMotion() error = %v", err)
	}

	stroke := Render(horizontal(), nil, Options{Width: 100, Height: 100})
	both := Render(horizontal(), m, Options{Width: 100, Height: 100, MarkerRadius: 5})

	// The first frame sits on the path start; 3 px below it only the marker draws.
	if got := stroke.RGBAAt(10, 53); got != white {
		t.Errorf("without markers pixel = %v, want background", got)
	}
	if got := both.RGBAAt(10, 53); got == white {
		t.Error("with markers pixel is still background")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"3366cc", color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}, false},
		{"#00000000", color.NRGBA{}, false},
		{"#3366cc80", color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0x80}, false},
		{"#f008", color.NRGBA{R: 0xff, A: 0x88}, false},
		{"#zzz", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender_TranslucentStroke(t *testing.T) {
	// Half-transparent black over white lands half way, not at full black.
	img := Render(horizontal(), nil, Options{
		Width:       100,
		Height:      100,
		Stroke:      color.NRGBA{A: 0x80},
		StrokeWidth: 6,
	})
	got := img.RGBAAt(50, 50)
	if got.R < 0x70 || got.R > 0x90 || got.R != got.G || got.G != got.B {
		t.Errorf("pixel on the path = %v, want mid grey", got)
	}
}

func TestEncodePNG(t *testing.T) {
	img := Render(horizontal(), nil, Options{Width: 32, Height: 16})

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, Render(nil, nil, Options{})); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), Render(nil, nil, Options{})); err == nil {
		t.Error("SavePNG() expected error for missing directory")
	}
}
