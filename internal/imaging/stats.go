package imaging

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the luminance distribution over a grid region.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Pixels int     `json:"pixels"`
}

// RegionStats computes luminance statistics over a rectangular region of a
// grid. The rectangle uses image bounds convention: Min inclusive, Max
// exclusive.
//
// Returns ErrInvalidInput if the grid is malformed or the rectangle is empty
// or extends outside the grid.
func RegionStats(grid [][]float64, region image.Rectangle) (*Stats, error) {
	height, width, err := GridDims(grid)
	if err != nil {
		return nil, err
	}
	if region.Empty() {
		return nil, fmt.Errorf("%w: empty region %v", ErrInvalidInput, region)
	}
	if region.Min.X < 0 || region.Min.Y < 0 || region.Max.X > width || region.Max.Y > height {
		return nil, fmt.Errorf("%w: region %v outside grid %dx%d", ErrInvalidInput, region, width, height)
	}

	values := make([]float64, 0, region.Dx()*region.Dy())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		values = append(values, grid[y][region.Min.X:region.Max.X]...)
	}

	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}
	return &Stats{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Pixels: len(values),
	}, nil
}
