package render

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Heatmap renders a scalar response map as a blue-to-red heat image.
//
// Values are min-max normalized over the whole map, then mapped through an
// HSV ramp from hue 240 (blue, minimum) to hue 0 (red, maximum). A constant
// map renders as all-blue. Returns an error for an empty or ragged map.
func Heatmap(response [][]float64) (*image.NRGBA, error) {
	if len(response) == 0 || len(response[0]) == 0 {
		return nil, fmt.Errorf("empty response map")
	}
	height := len(response)
	width := len(response[0])

	lo := floats.Min(response[0])
	hi := floats.Max(response[0])
	for y := 1; y < height; y++ {
		if len(response[y]) != width {
			return nil, fmt.Errorf("ragged response map: row %d has length %d, want %d",
				y, len(response[y]), width)
		}
		if m := floats.Min(response[y]); m < lo {
			lo = m
		}
		if m := floats.Max(response[y]); m > hi {
			hi = m
		}
	}
	span := hi - lo

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := 0.0
			if span > 0 {
				t = (response[y][x] - lo) / span
			}
			r, g, b := colorful.Hsv(240*(1-t), 1, 1).RGB255()
			i := out.PixOffset(x, y)
			out.Pix[i] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = 255
		}
	}
	return out, nil
}
