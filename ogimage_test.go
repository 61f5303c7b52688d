package postzaper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestRenderOGImageSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"wide", 2400, 630},
		{"tall", 300, 900},
		{"small square", 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := RenderOGImage(bytes.NewReader(encodePNG(t, tt.w, tt.h)), &out); err != nil {
				t.Fatalf("RenderOGImage: %v", err)
			}
			cfg, err := png.DecodeConfig(&out)
			if err != nil {
				t.Fatalf("decode output: %v", err)
			}
			if cfg.Width != OGImageWidth || cfg.Height != OGImageHeight {
				t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, OGImageWidth, OGImageHeight)
			}
		})
	}
}

func TestRenderOGImageRejectsGarbage(t *testing.T) {
	var out bytes.Buffer
	if err := RenderOGImage(bytes.NewReader([]byte("not an image")), &out); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCoverRect(t *testing.T) {
	tests := []struct {
		in   image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 2400, 630), image.Rect(600, 0, 1800, 630)},
		{image.Rect(0, 0, 1200, 1260), image.Rect(0, 315, 1200, 945)},
		{image.Rect(0, 0, 1200, 630), image.Rect(0, 0, 1200, 630)},
	}
	for _, tt := range tests {
		if got := coverRect(tt.in, OGImageWidth, OGImageHeight); got != tt.want {
			t.Errorf("coverRect(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWriteOGImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "brand.png")
	if err := os.WriteFile(src, encodePNG(t, 100, 50), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := WriteOGImage(src, filepath.Join(dir, "public"))
	if err != nil {
		t.Fatalf("WriteOGImage: %v", err)
	}
	if filepath.Base(out) != "og-image.png" {
		t.Errorf("out = %q", out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected output file: %v", err)
	}
}
