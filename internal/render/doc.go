// Package render turns feature-extraction results into images: keypoint
// overlays, response-map heatmaps, and cell-grid overlays.
//
// These are the inspection aids used throughout the labs; none of them feed
// back into the pipelines. All functions return a new image and leave their
// input untouched.
package render
