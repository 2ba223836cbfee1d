package imaging

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestRegionStats(t *testing.T) {
	grid := [][]float64{
		{0.0, 0.2, 0.4, 0.6},
		{0.2, 0.4, 0.6, 0.8},
		{0.4, 0.6, 0.8, 1.0},
	}

	stats, err := RegionStats(grid, image.Rect(0, 0, 4, 3))
	if err != nil {
		t.Fatalf("RegionStats failed: %v", err)
	}

	if stats.Pixels != 12 {
		t.Errorf("Pixels: got %d, want 12", stats.Pixels)
	}
	if math.Abs(stats.Mean-0.5) > 1e-12 {
		t.Errorf("Mean: got %g, want 0.5", stats.Mean)
	}
	if stats.Min != 0.0 || stats.Max != 1.0 {
		t.Errorf("Min/Max: got %g/%g, want 0/1", stats.Min, stats.Max)
	}
	if stats.StdDev <= 0 {
		t.Errorf("StdDev: got %g, want > 0", stats.StdDev)
	}
}

func TestRegionStats_SubRegion(t *testing.T) {
	grid := uniformGrid(10, 10, 0.25)
	grid[2][2] = 0.75

	stats, err := RegionStats(grid, image.Rect(2, 2, 3, 3))
	if err != nil {
		t.Fatalf("RegionStats failed: %v", err)
	}

	if stats.Pixels != 1 {
		t.Errorf("Pixels: got %d, want 1", stats.Pixels)
	}
	if stats.Mean != 0.75 || stats.StdDev != 0 {
		t.Errorf("single pixel: got mean %g std %g, want 0.75 and 0", stats.Mean, stats.StdDev)
	}
}

func TestRegionStats_Errors(t *testing.T) {
	grid := uniformGrid(5, 5, 0.5)

	tests := []struct {
		name   string
		region image.Rectangle
	}{
		{"empty region", image.Rect(2, 2, 2, 2)},
		{"outside right", image.Rect(0, 0, 6, 5)},
		{"outside bottom", image.Rect(0, 0, 5, 6)},
		{"negative origin", image.Rect(-1, 0, 3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RegionStats(grid, tt.region); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}

	if _, err := RegionStats(nil, image.Rect(0, 0, 1, 1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil grid: got %v, want ErrInvalidInput", err)
	}
}
