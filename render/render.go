// Package render turns iteration grids into images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	mandel "github.com/marben/mandelbench"
	"golang.org/x/image/draw"
)

// Image colours every grid cell. Points that never escaped are black,
// escaped points get a hue that cycles with the iteration count.
// Grid row 0 is the bottom of the region, so rows are flipped to keep +imaginary up.
func Image(g *mandel.Grid) *image.RGBA {
	w, h := g.Width(), g.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for j := 0; j < h; j++ {
		py := h - 1 - j
		for i, k := range g.Row(j) {
			img.SetRGBA(i, py, Color(k, g.MaxIter()))
		}
	}
	return img
}

// Color maps an iteration count to a pixel colour.
func Color(k, maxIter int) color.RGBA {
	if k >= maxIter {
		return color.RGBA{A: 255}
	}
	return hsv(float64(k)*0.02, 1, 1)
}

// Thumbnail returns src scaled to w x h.
func Thumbnail(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
