// Package snapshot rasterizes a text frame into an image file.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"spinwire/internal/raster"
)

// Cell size of basicfont.Face7x13.
const (
	CellW = 7
	CellH = 13
)

var ErrFormat = errors.New("snapshot: unsupported image format")

// Render draws the buffer as white monospace text on black, one 7×13 cell
// per character.
func Render(buf *raster.ScreenBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width()*CellW, buf.Height()*CellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for y, line := range buf.Lines() {
		d.Dot = fixed.P(0, y*CellH+face.Ascent)
		d.DrawString(line)
	}
	return img
}

// Encode writes img in the format named by ext (".png", ".webp", ".tga").
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".webp":
		return nativewebp.Encode(w, img, nil)
	case ".tga":
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}

// Save renders buf and writes it to path, creating parent directories.
func Save(buf *raster.ScreenBuffer, path string) error {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".png", ".webp", ".tga":
	default:
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Encode(f, Render(buf), ext); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
