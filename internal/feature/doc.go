// Package feature implements Histogram-of-Oriented-Gradients (HoG)
// descriptors over luminance grids.
//
// # Pipeline
//
//  1. Gradient computation: Sobel operators give per-pixel magnitude and
//     orientation, with orientation in the half-open range [0, 2π).
//  2. Orientation binning: each pixel falls in one of Bins equal-width
//     angular bins by integer division of its angle by the bin width.
//  3. Cell histograms: the image is partitioned into non-overlapping cells;
//     each cell accumulates gradient magnitude per orientation bin. Cells
//     are independent, so rows of cells are accumulated in parallel.
//  4. Block normalization: a block window of BlockSize cells slides over
//     the cell grid one cell at a time (blocks overlap); each block's
//     histograms are flattened and L1-normalized. A block with zero total
//     magnitude stays all-zero rather than dividing by zero.
//  5. Concatenation: block vectors are joined in raster order of block
//     position into the final descriptor.
//
// # Geometry
//
// The grid dimensions must be exact multiples of the cell size, and the
// resulting cell grid must be at least BlockSize cells in each dimension;
// anything else fails with imaging.ErrInvalidConfiguration. The number of
// block positions per axis is cells − blockCells + 1, so the descriptor
// length is
//
//	blocksY · blocksX · blockCellsY · blockCellsX · Bins
//
// exactly; DescriptorLen computes it without touching pixel data so callers
// can validate a configuration before a batch run.
package feature
