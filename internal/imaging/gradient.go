package imaging

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelGradients computes the horizontal and vertical partial derivatives of
// a luminance grid using the 3x3 Sobel operators.
//
// The returned grids have the same shape as the input. Border pixels use
// replicated edge values, so a uniform grid yields exactly zero gradients
// everywhere, including at the borders.
//
// Returns ErrInvalidInput if the grid is empty or ragged.
func SobelGradients(grid [][]float64) (gradX, gradY [][]float64, err error) {
	height, width, err := GridDims(grid)
	if err != nil {
		return nil, nil, err
	}

	gradX = make([][]float64, height)
	gradY = make([][]float64, height)
	for y := 0; y < height; y++ {
		gradX[y] = make([]float64, width)
		gradY[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += grid[py][px] * sobelX[ky+1][kx+1]
					gy += grid[py][px] * sobelY[ky+1][kx+1]
				}
			}
			gradX[y][x] = gx
			gradY[y][x] = gy
		}
	}
	return gradX, gradY, nil
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
