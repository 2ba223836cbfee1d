// Package detection implements Harris corner detection over luminance grids.
//
// # Pipeline
//
//  1. Gradient computation: 3x3 Sobel operators produce horizontal and
//     vertical partial derivative fields.
//  2. Second-moment accumulation: the products Ix², Iy², and Ix·Iy are each
//     smoothed by a weighted local window (Gaussian by default, box
//     optionally), giving the windowed sums Sxx, Syy, Sxy.
//  3. Response: R = Sxx·Syy − Sxy² − kappa·(Sxx + Syy)², the
//     determinant-minus-scaled-trace-squared corner measure. Responses may
//     be negative (edges score below zero) and are never floored.
//  4. Selection: a pixel becomes a keypoint when its response is a local
//     maximum within the suppression window and strictly above the
//     configured threshold.
//
// # Determinism
//
// Detection is a pure function of the grid and configuration. Keypoints are
// returned in scan order (top-to-bottom, left-to-right); callers must not
// rely on any other ordering.
//
// # Errors
//
// Empty or ragged grids fail with imaging.ErrInvalidInput rather than
// returning an empty keypoint set, since silent success on degenerate input
// masks upstream bugs. Bad parameters (non-positive window, sigma, or
// suppression radius) fail with imaging.ErrInvalidConfiguration.
package detection
