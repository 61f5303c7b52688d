package postzaper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Open Graph preview size recommended by the major networks.
const (
	OGImageWidth  = 1200
	OGImageHeight = 630
)

// RenderOGImage decodes src, center-crops it to the 1200x630 aspect ratio,
// scales it to that size and encodes it as PNG.
func RenderOGImage(src io.Reader, w io.Writer) error {
	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	crop := coverRect(img.Bounds(), OGImageWidth, OGImageHeight)
	dst := image.NewRGBA(image.Rect(0, 0, OGImageWidth, OGImageHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// coverRect returns the largest centered sub-rectangle of b with the
// aspect ratio w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	bw, bh := b.Dx(), b.Dy()
	if bw*h > bh*w {
		cw := bh * w / h
		x0 := b.Min.X + (bw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := bw * h / w
	y0 := b.Min.Y + (bh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}

// WriteOGImage renders srcPath into {staticDir}/og-image.png.
func WriteOGImage(srcPath, staticDir string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := RenderOGImage(f, &buf); err != nil {
		return "", err
	}
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return "", err
	}
	out := filepath.Join(staticDir, "og-image.png")
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return out, nil
}
