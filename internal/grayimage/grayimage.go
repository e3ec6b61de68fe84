// Package grayimage decodes a PNG file into the flat row-major []float32
// sample grid the cc package builds its decomposition from.
package grayimage

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"

	"github.com/arl/gogeo/f32"
)

// Grid is a decoded grayscale sample grid, ready to pass to cc.Build.
type Grid struct {
	Samples []float32
	W, H    int
}

// Decode reads a PNG image from r and converts it to a normalized
// []float32 grid in [0, 1], using the luminance of each pixel (an RGB
// image is converted to grayscale on the fly).
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("grayimage: decode: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("grayimage: image must be at least 2x2, got %dx%d", w, h)
	}

	g := &Grid{Samples: make([]float32, w*h), W: w, H: h}
	var lo, hi float32 = 1, 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			v := float32(gray.Y) / float32(0xffff)
			f32.SetMin(&lo, v)
			f32.SetMax(&hi, v)
			g.Samples[y*w+x] = v
		}
	}

	if hi > lo {
		scale := 1 / (hi - lo)
		for i, v := range g.Samples {
			g.Samples[i] = f32.Clamp((v-lo)*scale, 0, 1)
		}
	}
	return g, nil
}
