package detection

import (
	"fmt"
	"image"

	"github.com/jonhilgart22/gatech-comp-photo-lab/internal/imaging"
)

// Smoothing selects the weighting window applied to the second-moment sums.
type Smoothing string

const (
	// SmoothingGaussian weights the window by a Gaussian of the configured
	// sigma. This is the standard choice.
	SmoothingGaussian Smoothing = "gaussian"

	// SmoothingBox weights every pixel in the window equally.
	SmoothingBox Smoothing = "box"
)

// Config holds the parameters for Harris corner detection.
type Config struct {
	// WindowSize is the extent of the smoothing window in pixels; X is
	// width, Y is height. Both must be positive and odd.
	WindowSize image.Point `json:"window_size"`

	// Sigma is the standard deviation of the Gaussian window. Ignored for
	// box smoothing.
	Sigma float64 `json:"sigma"`

	// Kappa is the sensitivity constant weighting the squared trace in the
	// response. Typical values are 0.04 to 0.06.
	Kappa float64 `json:"kappa"`

	// Threshold is the minimum response for a keypoint. The comparison is
	// strict greater-than.
	Threshold float64 `json:"threshold"`

	// Smoothing selects the window weighting; empty means Gaussian.
	Smoothing Smoothing `json:"smoothing,omitempty"`

	// NMSRadius is the non-maximum suppression radius in pixels: a keypoint
	// must be maximal within the (2*NMSRadius+1)² neighborhood centered on
	// it. Must be at least 1.
	NMSRadius int `json:"nms_radius"`
}

// DefaultConfig holds conventional starting parameters: a 5x5 Gaussian
// window with sigma 1, kappa 0.04, and a 1-pixel suppression radius. The
// threshold is deliberately small; useful values depend on image content and
// are normally chosen after inspecting the response map.
var DefaultConfig = Config{
	WindowSize: image.Pt(5, 5),
	Sigma:      1.0,
	Kappa:      0.04,
	Threshold:  1e-6,
	Smoothing:  SmoothingGaussian,
	NMSRadius:  1,
}

// Validate reports whether the configuration is usable, returning
// imaging.ErrInvalidConfiguration with details if not.
func (c Config) Validate() error {
	if c.WindowSize.X <= 0 || c.WindowSize.Y <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive",
			imaging.ErrInvalidConfiguration, c.WindowSize.X, c.WindowSize.Y)
	}
	if c.WindowSize.X%2 == 0 || c.WindowSize.Y%2 == 0 {
		return fmt.Errorf("%w: window size %dx%d must be odd",
			imaging.ErrInvalidConfiguration, c.WindowSize.X, c.WindowSize.Y)
	}
	switch c.Smoothing {
	case SmoothingGaussian, "":
		if c.Sigma <= 0 {
			return fmt.Errorf("%w: sigma %g must be positive", imaging.ErrInvalidConfiguration, c.Sigma)
		}
	case SmoothingBox:
	default:
		return fmt.Errorf("%w: unknown smoothing %q", imaging.ErrInvalidConfiguration, c.Smoothing)
	}
	if c.NMSRadius < 1 {
		return fmt.Errorf("%w: nms radius %d must be at least 1", imaging.ErrInvalidConfiguration, c.NMSRadius)
	}
	return nil
}

func (c Config) kernel() ([][]float64, error) {
	if c.Smoothing == SmoothingBox {
		return imaging.BoxKernel(c.WindowSize)
	}
	return imaging.GaussianKernel(c.WindowSize, c.Sigma)
}

// ResponseMap computes the per-pixel Harris corner response of a luminance
// grid. The output has the same shape as the input and may contain negative
// values: flat regions score near zero, edges below zero, corners above.
//
// ResponseMap is exported separately from DetectCorners so callers can
// inspect or render the raw response (for example as a heatmap) and choose a
// threshold from it.
func ResponseMap(grid [][]float64, cfg Config) ([][]float64, error) {
	height, width, err := imaging.GridDims(grid)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gradX, gradY, err := imaging.SobelGradients(grid)
	if err != nil {
		return nil, err
	}

	ixx := make([][]float64, height)
	iyy := make([][]float64, height)
	ixy := make([][]float64, height)
	for y := 0; y < height; y++ {
		ixx[y] = make([]float64, width)
		iyy[y] = make([]float64, width)
		ixy[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			gx := gradX[y][x]
			gy := gradY[y][x]
			ixx[y][x] = gx * gx
			iyy[y][x] = gy * gy
			ixy[y][x] = gx * gy
		}
	}

	kernel, err := cfg.kernel()
	if err != nil {
		return nil, err
	}
	sxx, err := imaging.Smooth(ixx, kernel)
	if err != nil {
		return nil, err
	}
	syy, err := imaging.Smooth(iyy, kernel)
	if err != nil {
		return nil, err
	}
	sxy, err := imaging.Smooth(ixy, kernel)
	if err != nil {
		return nil, err
	}

	response := make([][]float64, height)
	for y := 0; y < height; y++ {
		response[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			det := sxx[y][x]*syy[y][x] - sxy[y][x]*sxy[y][x]
			trace := sxx[y][x] + syy[y][x]
			response[y][x] = det - cfg.Kappa*trace*trace
		}
	}
	return response, nil
}

// DetectCorners runs the full Harris pipeline and returns the keypoints: the
// pixels whose response is a local maximum within the suppression window and
// strictly above cfg.Threshold.
//
// Keypoints are returned in scan order. A uniform image yields an empty,
// non-nil slice for any positive threshold.
func DetectCorners(grid [][]float64, cfg Config) ([]image.Point, error) {
	response, err := ResponseMap(grid, cfg)
	if err != nil {
		return nil, err
	}
	return SuppressNonMaxima(response, cfg.Threshold, cfg.NMSRadius)
}

// SuppressNonMaxima selects the coordinates of a response map that exceed
// the threshold and are maximal within the (2*radius+1)² neighborhood
// centered on them. Plateau ties are kept on both sides.
func SuppressNonMaxima(response [][]float64, threshold float64, radius int) ([]image.Point, error) {
	height, width, err := imaging.GridDims(response)
	if err != nil {
		return nil, err
	}
	if radius < 1 {
		return nil, fmt.Errorf("%w: nms radius %d must be at least 1", imaging.ErrInvalidConfiguration, radius)
	}

	points := []image.Point{}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := response[y][x]
			if r <= threshold {
				continue
			}
			if isLocalMax(response, x, y, width, height, radius, r) {
				points = append(points, image.Pt(x, y))
			}
		}
	}
	return points, nil
}

func isLocalMax(response [][]float64, x, y, width, height, radius int, r float64) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny := y + dy
			nx := x + dx
			if ny < 0 || ny >= height || nx < 0 || nx >= width {
				continue
			}
			if response[ny][nx] > r {
				return false
			}
		}
	}
	return true
}
