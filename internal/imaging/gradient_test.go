package imaging

import (
	"errors"
	"math"
	"testing"
)

func uniformGrid(width, height int, v float64) [][]float64 {
	grid := make([][]float64, height)
	for y := range grid {
		grid[y] = make([]float64, width)
		for x := range grid[y] {
			grid[y][x] = v
		}
	}
	return grid
}

func TestSobelGradients_Uniform(t *testing.T) {
	grid := uniformGrid(12, 10, 0.5)

	gradX, gradY, err := SobelGradients(grid)
	if err != nil {
		t.Fatalf("SobelGradients failed: %v", err)
	}

	// Replicated borders mean a constant grid has exactly zero gradient
	// everywhere, including the border rows and columns.
	for y := range gradX {
		for x := range gradX[y] {
			if gradX[y][x] != 0 || gradY[y][x] != 0 {
				t.Fatalf("gradient at (%d,%d): got (%g,%g), want (0,0)",
					x, y, gradX[y][x], gradY[y][x])
			}
		}
	}
}

func TestSobelGradients_VerticalEdge(t *testing.T) {
	// Left half dark, right half bright: strong horizontal gradient at the
	// step, no vertical gradient anywhere.
	grid := uniformGrid(10, 10, 0)
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			grid[y][x] = 1
		}
	}

	gradX, gradY, err := SobelGradients(grid)
	if err != nil {
		t.Fatalf("SobelGradients failed: %v", err)
	}

	if gradX[5][5] <= 0 {
		t.Errorf("gradX at step: got %g, want > 0", gradX[5][5])
	}
	// A full 3x3 Sobel across a unit step sums to 4.
	if math.Abs(gradX[5][5]-4) > 1e-12 {
		t.Errorf("gradX at step: got %g, want 4", gradX[5][5])
	}
	for y := range gradY {
		for x := range gradY[y] {
			if gradY[y][x] != 0 {
				t.Fatalf("gradY[%d][%d]: got %g, want 0", y, x, gradY[y][x])
			}
		}
	}
	// Far from the step there is no horizontal gradient either.
	if gradX[5][1] != 0 || gradX[5][8] != 0 {
		t.Errorf("gradX away from step: got %g and %g, want 0", gradX[5][1], gradX[5][8])
	}
}

func TestSobelGradients_HorizontalEdge(t *testing.T) {
	grid := uniformGrid(10, 10, 0)
	for y := 5; y < 10; y++ {
		for x := 0; x < 10; x++ {
			grid[y][x] = 1
		}
	}

	gradX, gradY, err := SobelGradients(grid)
	if err != nil {
		t.Fatalf("SobelGradients failed: %v", err)
	}

	if gradY[5][5] <= 0 {
		t.Errorf("gradY at step: got %g, want > 0", gradY[5][5])
	}
	if gradX[5][5] != 0 {
		t.Errorf("gradX at horizontal edge: got %g, want 0", gradX[5][5])
	}
}

func TestSobelGradients_InvalidInput(t *testing.T) {
	if _, _, err := SobelGradients(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil grid: got %v, want ErrInvalidInput", err)
	}
	if _, _, err := SobelGradients([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ragged grid: got %v, want ErrInvalidInput", err)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("clamp(%d, %d, %d): got %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}
