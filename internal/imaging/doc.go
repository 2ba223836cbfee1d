// Package imaging provides the shared image plumbing for the feature
// extraction pipelines: loading and caching images from disk, converting
// them to luminance grids, computing Sobel gradient fields, and smoothing
// with parametric Gaussian or box windows.
//
// # Luminance Grids
//
// The corner and descriptor pipelines both operate on a luminance grid: a
// [][]float64 indexed as grid[y][x], row-major with (0,0) at the top-left
// corner, holding intensity values in [0, 1]. Grids are produced once by
// Luminance (or ImageCache.LoadLuminance) and shared between pipelines; no
// function in this package mutates an input grid.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// image.Point values used for window, cell, and block sizes follow the same
// convention: X is the horizontal extent (width), Y the vertical (height).
//
// # Border Handling
//
// Convolution-style operations (SobelGradients, Smooth) replicate the edge
// pixel when the kernel window extends outside the grid, so output grids
// always have the same shape as their input.
//
// # Error Handling
//
// Two sentinel errors classify every failure in this package and in the
// detection and feature packages that build on it:
//
//   - ErrInvalidInput: the image or grid itself is unusable (zero
//     dimensions, ragged rows).
//   - ErrInvalidConfiguration: the requested geometry cannot apply to an
//     otherwise valid input (non-positive or even smoothing windows,
//     dimensions not divisible by a cell size, and so on).
//
// Errors are wrapped with fmt.Errorf("...: %w", ...) so callers can test
// with errors.Is while still seeing the offending values.
package imaging
