package feature

import (
	"fmt"
	"image"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/jonhilgart22/gatech-comp-photo-lab/internal/imaging"
)

// Config holds the parameters for HoG descriptor computation.
type Config struct {
	// CellSize is the cell extent in pixels; X is width, Y is height. Image
	// dimensions must be exact multiples of it.
	CellSize image.Point `json:"cell_size"`

	// BlockSize is the block extent in cells per axis.
	BlockSize image.Point `json:"block_size"`

	// Bins is the number of equal-width orientation bins partitioning
	// [0, 2π).
	Bins int `json:"bins"`
}

// DefaultConfig mirrors the common HoG setup: 8x8-pixel cells, 3x3-cell
// blocks, 9 orientation bins.
var DefaultConfig = Config{
	CellSize:  image.Pt(8, 8),
	BlockSize: image.Pt(3, 3),
	Bins:      9,
}

// Validate reports whether the configuration is usable on its own, before
// any image geometry is known. Returns imaging.ErrInvalidConfiguration with
// details if not.
func (c Config) Validate() error {
	if c.CellSize.X <= 0 || c.CellSize.Y <= 0 {
		return fmt.Errorf("%w: cell size %dx%d must be positive",
			imaging.ErrInvalidConfiguration, c.CellSize.X, c.CellSize.Y)
	}
	if c.BlockSize.X <= 0 || c.BlockSize.Y <= 0 {
		return fmt.Errorf("%w: block size %dx%d must be positive",
			imaging.ErrInvalidConfiguration, c.BlockSize.X, c.BlockSize.Y)
	}
	if c.Bins <= 0 {
		return fmt.Errorf("%w: bin count %d must be positive", imaging.ErrInvalidConfiguration, c.Bins)
	}
	return nil
}

// geometry describes how a configuration tiles a particular grid.
type geometry struct {
	cellsX, cellsY   int
	blocksX, blocksY int
}

func (c Config) geometry(height, width int) (geometry, error) {
	if err := c.Validate(); err != nil {
		return geometry{}, err
	}
	if width%c.CellSize.X != 0 || height%c.CellSize.Y != 0 {
		return geometry{}, fmt.Errorf("%w: image %dx%d not divisible by cell size %dx%d",
			imaging.ErrInvalidConfiguration, width, height, c.CellSize.X, c.CellSize.Y)
	}
	g := geometry{
		cellsX: width / c.CellSize.X,
		cellsY: height / c.CellSize.Y,
	}
	if g.cellsX < c.BlockSize.X || g.cellsY < c.BlockSize.Y {
		return geometry{}, fmt.Errorf("%w: cell grid %dx%d smaller than block size %dx%d",
			imaging.ErrInvalidConfiguration, g.cellsX, g.cellsY, c.BlockSize.X, c.BlockSize.Y)
	}
	g.blocksX = g.cellsX - c.BlockSize.X + 1
	g.blocksY = g.cellsY - c.BlockSize.Y + 1
	return g, nil
}

// DescriptorLen returns the exact length of the descriptor a configuration
// produces for a height-by-width grid, without computing anything over pixel
// data. It fails with imaging.ErrInvalidConfiguration under the same
// geometry rules as Descriptor, so it doubles as an upfront validation for
// batch runs.
func DescriptorLen(cfg Config, height, width int) (int, error) {
	g, err := cfg.geometry(height, width)
	if err != nil {
		return 0, err
	}
	return g.blocksY * g.blocksX * cfg.BlockSize.Y * cfg.BlockSize.X * cfg.Bins, nil
}

// CellHistograms computes the magnitude-weighted orientation histogram of
// every cell, returned as hist[cellY][cellX][bin]. Cell rows are accumulated
// concurrently; the result is deterministic since cells do not share pixels.
//
// Exported for cell-level visualization; most callers want Descriptor.
func CellHistograms(grid [][]float64, cfg Config) ([][][]float64, error) {
	height, width, err := imaging.GridDims(grid)
	if err != nil {
		return nil, err
	}
	g, err := cfg.geometry(height, width)
	if err != nil {
		return nil, err
	}

	gradX, gradY, err := imaging.SobelGradients(grid)
	if err != nil {
		return nil, err
	}

	hist := make([][][]float64, g.cellsY)
	var wg sync.WaitGroup
	for cy := 0; cy < g.cellsY; cy++ {
		hist[cy] = make([][]float64, g.cellsX)
		wg.Add(1)
		go func(cy int) {
			defer wg.Done()
			for cx := 0; cx < g.cellsX; cx++ {
				hist[cy][cx] = cellHistogram(gradX, gradY, cfg, cx, cy)
			}
		}(cy)
	}
	wg.Wait()
	return hist, nil
}

func cellHistogram(gradX, gradY [][]float64, cfg Config, cx, cy int) []float64 {
	h := make([]float64, cfg.Bins)
	y0 := cy * cfg.CellSize.Y
	x0 := cx * cfg.CellSize.X
	for y := y0; y < y0+cfg.CellSize.Y; y++ {
		for x := x0; x < x0+cfg.CellSize.X; x++ {
			gx := gradX[y][x]
			gy := gradY[y][x]
			mag := math.Hypot(gx, gy)
			if mag == 0 {
				continue
			}
			h[orientationBin(gx, gy, cfg.Bins)] += mag
		}
	}
	return h
}

// orientationBin quantizes a gradient direction into one of bins equal-width
// intervals of [0, 2π) by integer division of the angle by the bin width.
func orientationBin(gx, gy float64, bins int) int {
	angle := math.Atan2(gy, gx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	b := int(angle / (2 * math.Pi / float64(bins)))
	// A tiny negative direction can round to exactly 2π after the shift,
	// which wraps to bin 0.
	if b >= bins {
		b = 0
	}
	return b
}

// Descriptor computes the HoG feature vector of a luminance grid.
//
// Each block's flattened histograms are L1-normalized independently, so
// every block-sized slice of the result sums to 1 (or 0 for a block with no
// gradient content). Blocks appear in raster order of block position and
// cells within a block in raster order of cell, so the output layout is
// fully determined by the configuration.
func Descriptor(grid [][]float64, cfg Config) ([]float64, error) {
	height, width, err := imaging.GridDims(grid)
	if err != nil {
		return nil, err
	}
	g, err := cfg.geometry(height, width)
	if err != nil {
		return nil, err
	}
	hist, err := CellHistograms(grid, cfg)
	if err != nil {
		return nil, err
	}

	blockLen := cfg.BlockSize.Y * cfg.BlockSize.X * cfg.Bins
	out := make([]float64, 0, g.blocksY*g.blocksX*blockLen)
	block := make([]float64, 0, blockLen)
	for by := 0; by < g.blocksY; by++ {
		for bx := 0; bx < g.blocksX; bx++ {
			block = block[:0]
			for cy := by; cy < by+cfg.BlockSize.Y; cy++ {
				for cx := bx; cx < bx+cfg.BlockSize.X; cx++ {
					block = append(block, hist[cy][cx]...)
				}
			}
			if sum := floats.Sum(block); sum > 0 {
				floats.Scale(1/sum, block)
			}
			out = append(out, block...)
		}
	}
	return out, nil
}
