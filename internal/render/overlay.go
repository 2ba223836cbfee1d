package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/disintegration/imaging"
)

// markerRadius is the arm length of the keypoint cross marker, in pixels.
const markerRadius = 3

// Keypoints draws a cross marker at each point over a copy of the image.
//
// Parameters:
//   - img: source image; it is cloned, not modified.
//   - points: marker centers in image coordinates. Points outside the image
//     are skipped.
//   - markerHex: marker color as "#RRGGBB" or "#RRGGBBAA". An unparsable
//     color falls back to opaque red.
func Keypoints(img image.Image, points []image.Point, markerHex string) *image.NRGBA {
	marker, err := ParseHexColor(markerHex)
	if err != nil {
		marker = color.NRGBA{R: 255, A: 255}
	}

	out := imaging.Clone(img)
	bounds := out.Bounds()
	for _, p := range points {
		if !p.In(bounds) {
			continue
		}
		for d := -markerRadius; d <= markerRadius; d++ {
			if x := p.X + d; x >= bounds.Min.X && x < bounds.Max.X {
				out.SetNRGBA(x, p.Y, marker)
			}
			if y := p.Y + d; y >= bounds.Min.Y && y < bounds.Max.Y {
				out.SetNRGBA(p.X, y, marker)
			}
		}
	}
	return out
}

// CellGrid draws cell boundary lines over a copy of the image, one line
// every cell.X pixels horizontally and every cell.Y vertically. Used to
// inspect how a descriptor configuration tiles an image.
//
// Returns an error for non-positive cell sizes.
func CellGrid(img image.Image, cell image.Point, lineHex string) (*image.NRGBA, error) {
	if cell.X <= 0 || cell.Y <= 0 {
		return nil, fmt.Errorf("cell size %dx%d must be positive", cell.X, cell.Y)
	}
	line, err := ParseHexColor(lineHex)
	if err != nil {
		line = color.NRGBA{R: 255, A: 255}
	}

	out := imaging.Clone(img)
	bounds := out.Bounds()
	for x := bounds.Min.X + cell.X; x < bounds.Max.X; x += cell.X {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			out.SetNRGBA(x, y, line)
		}
	}
	for y := bounds.Min.Y + cell.Y; y < bounds.Max.Y; y += cell.Y {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetNRGBA(x, y, line)
		}
	}
	return out, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional) into
// an NRGBA color.
func ParseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// SavePNG writes an image to disk; the format follows the file extension,
// so ".png" gives PNG output.
func SavePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
