package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// Luminance converts an image to a luminance grid: a [][]float64 indexed as
// grid[y][x] with values in [0, 1].
//
// Color images are reduced to grayscale first using ITU-R BT.601 luma
// weights (0.299*R + 0.587*G + 0.114*B); already-gray images pass through
// unchanged. Returns ErrInvalidInput if the image has zero width or height.
func Luminance(img image.Image) ([][]float64, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrInvalidInput, width, height)
	}

	gray := effect.GrayscaleWithWeights(img, 0.299, 0.587, 0.114)

	grid := make([][]float64, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			// The grayscale copy keeps the source bounds, so sub-images with
			// a non-zero origin need the offset. R = G = B after conversion,
			// one channel is enough.
			i := gray.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			grid[y][x] = float64(gray.Pix[i]) / 255.0
		}
	}
	return grid, nil
}

// GridDims validates a luminance grid and returns its height and width.
//
// Returns ErrInvalidInput for a nil or empty grid, a grid with empty rows,
// or a grid whose rows have differing lengths. Both feature pipelines call
// this before touching pixel data so that malformed input fails fast rather
// than producing a silently empty result.
func GridDims(grid [][]float64) (height, width int, err error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: empty grid", ErrInvalidInput)
	}
	height = len(grid)
	width = len(grid[0])
	for y := 1; y < height; y++ {
		if len(grid[y]) != width {
			return 0, 0, fmt.Errorf("%w: row %d has length %d, want %d",
				ErrInvalidInput, y, len(grid[y]), width)
		}
	}
	return height, width, nil
}
