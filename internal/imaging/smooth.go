package imaging

import (
	"fmt"
	"image"
	"math"
)

// GaussianKernel builds a normalized 2D Gaussian weighting window.
//
// Parameters:
//   - size: window extent in pixels; X is width, Y is height. Both must be
//     positive and odd so the window has a center pixel.
//   - sigma: standard deviation of the Gaussian, must be positive.
//
// The kernel entries sum to 1, so smoothing with it preserves the mean
// intensity of the grid. Returns ErrInvalidConfiguration for even or
// non-positive sizes or a non-positive sigma.
func GaussianKernel(size image.Point, sigma float64) ([][]float64, error) {
	if err := validateWindow(size); err != nil {
		return nil, err
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma %g must be positive", ErrInvalidConfiguration, sigma)
	}

	cy := size.Y / 2
	cx := size.X / 2
	kernel := make([][]float64, size.Y)
	var sum float64
	for y := 0; y < size.Y; y++ {
		kernel[y] = make([]float64, size.X)
		for x := 0; x < size.X; x++ {
			dy := float64(y - cy)
			dx := float64(x - cx)
			w := math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
			kernel[y][x] = w
			sum += w
		}
	}
	for y := range kernel {
		for x := range kernel[y] {
			kernel[y][x] /= sum
		}
	}
	return kernel, nil
}

// BoxKernel builds a normalized uniform weighting window of the given size.
// Every entry is 1/(size.X*size.Y). Same size constraints as GaussianKernel.
func BoxKernel(size image.Point) ([][]float64, error) {
	if err := validateWindow(size); err != nil {
		return nil, err
	}
	w := 1.0 / float64(size.X*size.Y)
	kernel := make([][]float64, size.Y)
	for y := 0; y < size.Y; y++ {
		kernel[y] = make([]float64, size.X)
		for x := 0; x < size.X; x++ {
			kernel[y][x] = w
		}
	}
	return kernel, nil
}

// Smooth convolves a grid with a weighting kernel, replicating edge pixels
// where the window extends outside the grid. The output has the same shape
// as the input; the input is not modified.
//
// Returns ErrInvalidInput for an empty or ragged grid and
// ErrInvalidConfiguration for an empty kernel.
func Smooth(grid, kernel [][]float64) ([][]float64, error) {
	height, width, err := GridDims(grid)
	if err != nil {
		return nil, err
	}
	if len(kernel) == 0 || len(kernel[0]) == 0 {
		return nil, fmt.Errorf("%w: empty kernel", ErrInvalidConfiguration)
	}
	kh := len(kernel)
	kw := len(kernel[0])
	cy := kh / 2
	cx := kw / 2

	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := 0; ky < kh; ky++ {
				for kx := 0; kx < kw; kx++ {
					py := clamp(y+ky-cy, 0, height-1)
					px := clamp(x+kx-cx, 0, width-1)
					sum += grid[py][px] * kernel[ky][kx]
				}
			}
			out[y][x] = sum
		}
	}
	return out, nil
}

func validateWindow(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfiguration, size.X, size.Y)
	}
	if size.X%2 == 0 || size.Y%2 == 0 {
		return fmt.Errorf("%w: window size %dx%d must be odd", ErrInvalidConfiguration, size.X, size.Y)
	}
	return nil
}
