package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// AlignToCells crops an image to the largest size evenly divisible by the
// given cell size, discarding the right and bottom remainder.
//
// The descriptor pipeline requires image dimensions to be exact multiples of
// the cell size; this is the standard preprocessing step for images that are
// not. The top-left corner is preserved.
//
// Returns ErrInvalidConfiguration for a non-positive cell size and
// ErrInvalidInput if the image is smaller than a single cell in either
// dimension.
func AlignToCells(img image.Image, cell image.Point) (image.Image, error) {
	if cell.X <= 0 || cell.Y <= 0 {
		return nil, fmt.Errorf("%w: cell size %dx%d must be positive", ErrInvalidConfiguration, cell.X, cell.Y)
	}
	bounds := img.Bounds()
	width := bounds.Dx() - bounds.Dx()%cell.X
	height := bounds.Dy() - bounds.Dy()%cell.Y
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: image %dx%d smaller than cell %dx%d",
			ErrInvalidInput, bounds.Dx(), bounds.Dy(), cell.X, cell.Y)
	}
	if width == bounds.Dx() && height == bounds.Dy() {
		return img, nil
	}
	return imaging.Crop(img, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+width, bounds.Min.Y+height)), nil
}
