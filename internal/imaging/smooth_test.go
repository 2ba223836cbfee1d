package imaging

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	kernel, err := GaussianKernel(image.Pt(5, 5), 1.0)
	if err != nil {
		t.Fatalf("GaussianKernel failed: %v", err)
	}

	if len(kernel) != 5 || len(kernel[0]) != 5 {
		t.Fatalf("kernel dimensions: got %dx%d, want 5x5", len(kernel[0]), len(kernel))
	}

	var sum float64
	for _, row := range kernel {
		for _, w := range row {
			if w <= 0 {
				t.Fatalf("kernel weight %g must be positive", w)
			}
			sum += w
		}
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("kernel sum: got %g, want 1", sum)
	}

	// Center weight dominates and the kernel is symmetric.
	if kernel[2][2] <= kernel[2][0] {
		t.Errorf("center %g should exceed corner-row weight %g", kernel[2][2], kernel[2][0])
	}
	if kernel[0][2] != kernel[4][2] || kernel[2][0] != kernel[2][4] {
		t.Error("kernel should be symmetric about its center")
	}
}

func TestGaussianKernel_NonSquare(t *testing.T) {
	kernel, err := GaussianKernel(image.Pt(3, 7), 1.5)
	if err != nil {
		t.Fatalf("GaussianKernel failed: %v", err)
	}
	if len(kernel) != 7 || len(kernel[0]) != 3 {
		t.Errorf("kernel dimensions: got %dx%d, want 3x7", len(kernel[0]), len(kernel))
	}
}

func TestGaussianKernel_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		size  image.Point
		sigma float64
	}{
		{"even width", image.Pt(4, 5), 1.0},
		{"even height", image.Pt(5, 4), 1.0},
		{"zero size", image.Pt(0, 5), 1.0},
		{"negative size", image.Pt(5, -3), 1.0},
		{"zero sigma", image.Pt(5, 5), 0},
		{"negative sigma", image.Pt(5, 5), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GaussianKernel(tt.size, tt.sigma); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("got %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestBoxKernel(t *testing.T) {
	kernel, err := BoxKernel(image.Pt(3, 3))
	if err != nil {
		t.Fatalf("BoxKernel failed: %v", err)
	}

	want := 1.0 / 9.0
	for _, row := range kernel {
		for _, w := range row {
			if math.Abs(w-want) > 1e-15 {
				t.Fatalf("box weight: got %g, want %g", w, want)
			}
		}
	}

	if _, err := BoxKernel(image.Pt(2, 3)); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("even box size: got %v, want ErrInvalidConfiguration", err)
	}
}

func TestSmooth_UniformStaysUniform(t *testing.T) {
	grid := uniformGrid(10, 10, 0.5)
	kernel, err := GaussianKernel(image.Pt(5, 5), 1.0)
	if err != nil {
		t.Fatalf("GaussianKernel failed: %v", err)
	}

	out, err := Smooth(grid, kernel)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}

	for y := range out {
		for x := range out[y] {
			if math.Abs(out[y][x]-0.5) > 1e-12 {
				t.Fatalf("out[%d][%d]: got %g, want 0.5", y, x, out[y][x])
			}
		}
	}
}

func TestSmooth_SpreadsSpot(t *testing.T) {
	grid := uniformGrid(11, 11, 0)
	grid[5][5] = 1.0
	kernel, err := GaussianKernel(image.Pt(3, 3), 1.0)
	if err != nil {
		t.Fatalf("GaussianKernel failed: %v", err)
	}

	out, err := Smooth(grid, kernel)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}

	if out[5][5] >= 1.0 {
		t.Error("bright spot should be reduced after smoothing")
	}
	if out[5][4] == 0 || out[5][6] == 0 || out[4][5] == 0 || out[6][5] == 0 {
		t.Error("neighbors should receive some brightness from smoothing")
	}
	// The input grid must not be modified.
	if grid[5][4] != 0 || grid[5][5] != 1.0 {
		t.Error("Smooth modified its input grid")
	}
}

func TestSmooth_Errors(t *testing.T) {
	kernel, err := BoxKernel(image.Pt(3, 3))
	if err != nil {
		t.Fatalf("BoxKernel failed: %v", err)
	}

	if _, err := Smooth(nil, kernel); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil grid: got %v, want ErrInvalidInput", err)
	}
	if _, err := Smooth(uniformGrid(4, 4, 1), [][]float64{}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("empty kernel: got %v, want ErrInvalidConfiguration", err)
	}
}
