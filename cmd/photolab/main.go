package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/anthonynsimon/bild/blur"

	"github.com/jonhilgart22/gatech-comp-photo-lab/internal/detection"
	"github.com/jonhilgart22/gatech-comp-photo-lab/internal/feature"
	"github.com/jonhilgart22/gatech-comp-photo-lab/internal/imaging"
	"github.com/jonhilgart22/gatech-comp-photo-lab/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// cache holds decoded images for the run, so batch invocations over
// repeated paths decode each image once.
var cache = imaging.NewImageCache()

func main() {
	// Results go to stdout as JSON; everything else to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("photolab %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	case "--help", "-h", "help":
		usage()
	case "corners":
		err = runCorners(os.Args[2:])
	case "hog":
		err = runHOG(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("photolab - classic-vision feature extraction")
	fmt.Println()
	fmt.Println("Usage: photolab <command> [options] <image> [image...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  corners    Harris corner detection, keypoints as JSON")
	fmt.Println("  hog        Histogram-of-Oriented-Gradients descriptor as JSON")
	fmt.Println("  version    Print version information")
	fmt.Println()
	fmt.Println("Run 'photolab <command> -h' for command options.")
}

// point is the JSON shape of a pixel coordinate.
type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// cornersResult is the per-image output of the corners command.
type cornersResult struct {
	Path    string           `json:"path"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Config  detection.Config `json:"config"`
	Count   int              `json:"count"`
	Corners []point          `json:"corners"`
}

func runCorners(args []string) error {
	fs := flag.NewFlagSet("corners", flag.ExitOnError)
	window := fs.Int("window", detection.DefaultConfig.WindowSize.X, "smoothing window size in pixels (odd)")
	sigma := fs.Float64("sigma", detection.DefaultConfig.Sigma, "Gaussian window standard deviation")
	kappa := fs.Float64("kappa", detection.DefaultConfig.Kappa, "Harris sensitivity constant")
	threshold := fs.Float64("threshold", detection.DefaultConfig.Threshold, "minimum corner response (strict)")
	smoothing := fs.String("smoothing", string(detection.SmoothingGaussian), "window weighting: gaussian or box")
	nms := fs.Int("nms", detection.DefaultConfig.NMSRadius, "non-maximum suppression radius in pixels")
	denoise := fs.Float64("denoise", 0, "optional Gaussian denoise radius applied before detection")
	overlay := fs.String("overlay", "", "write keypoint overlay image to this path (single image only)")
	heatmap := fs.String("heatmap", "", "write response heatmap image to this path (single image only)")
	marker := fs.String("marker", "#00FF00", "overlay marker color as #RRGGBB")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return fmt.Errorf("no input images")
	}
	if len(paths) > 1 && (*overlay != "" || *heatmap != "") {
		return fmt.Errorf("-overlay and -heatmap require a single input image")
	}

	cfg := detection.Config{
		WindowSize: image.Pt(*window, *window),
		Sigma:      *sigma,
		Kappa:      *kappa,
		Threshold:  *threshold,
		Smoothing:  detection.Smoothing(*smoothing),
		NMSRadius:  *nms,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	results := make([]cornersResult, 0, len(paths))
	for _, path := range paths {
		img, grid, err := loadGrid(path, *denoise)
		if err != nil {
			return err
		}

		response, err := detection.ResponseMap(grid, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		corners, err := detection.SuppressNonMaxima(response, cfg.Threshold, cfg.NMSRadius)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if *heatmap != "" {
			heat, err := render.Heatmap(response)
			if err != nil {
				return err
			}
			if err := render.SavePNG(*heatmap, heat); err != nil {
				return err
			}
			log.Printf("wrote response heatmap to %s", *heatmap)
		}
		if *overlay != "" {
			if err := render.SavePNG(*overlay, render.Keypoints(img, corners, *marker)); err != nil {
				return err
			}
			log.Printf("wrote keypoint overlay to %s", *overlay)
		}

		result := cornersResult{
			Path:    path,
			Width:   len(grid[0]),
			Height:  len(grid),
			Config:  cfg,
			Count:   len(corners),
			Corners: make([]point, len(corners)),
		}
		for i, c := range corners {
			result.Corners[i] = point{X: c.X, Y: c.Y}
		}
		results = append(results, result)
	}
	if len(results) == 1 {
		return writeJSON(results[0])
	}
	return writeJSON(results)
}

// hogResult is the per-image output of the hog command.
type hogResult struct {
	Path       string         `json:"path"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Config     feature.Config `json:"config"`
	Length     int            `json:"length"`
	Descriptor []float64      `json:"descriptor"`
}

func runHOG(args []string) error {
	fs := flag.NewFlagSet("hog", flag.ExitOnError)
	cellW := fs.Int("cell-w", feature.DefaultConfig.CellSize.X, "cell width in pixels")
	cellH := fs.Int("cell-h", feature.DefaultConfig.CellSize.Y, "cell height in pixels")
	blockW := fs.Int("block-w", feature.DefaultConfig.BlockSize.X, "block width in cells")
	blockH := fs.Int("block-h", feature.DefaultConfig.BlockSize.Y, "block height in cells")
	bins := fs.Int("bins", feature.DefaultConfig.Bins, "orientation bin count")
	align := fs.Bool("align", false, "crop images to the nearest cell multiple instead of failing")
	denoise := fs.Float64("denoise", 0, "optional Gaussian denoise radius applied before extraction")
	gridOut := fs.String("grid", "", "write cell-grid overlay image to this path (single image only)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return fmt.Errorf("no input images")
	}
	if len(paths) > 1 && *gridOut != "" {
		return fmt.Errorf("-grid requires a single input image")
	}

	cfg := feature.Config{
		CellSize:  image.Pt(*cellW, *cellH),
		BlockSize: image.Pt(*blockW, *blockH),
		Bins:      *bins,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	results := make([]hogResult, 0, len(paths))
	for _, path := range paths {
		img, grid, err := loadGrid(path, *denoise)
		if err != nil {
			return err
		}
		if *align {
			aligned, err := imaging.AlignToCells(img, cfg.CellSize)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if aligned != img {
				img = aligned
				if grid, err = imaging.Luminance(img); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				log.Printf("aligned %s to %dx%d", path, len(grid[0]), len(grid))
			}
		}

		descriptor, err := feature.Descriptor(grid, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if *gridOut != "" {
			overlay, err := render.CellGrid(img, cfg.CellSize, "#FF0000")
			if err != nil {
				return err
			}
			if err := render.SavePNG(*gridOut, overlay); err != nil {
				return err
			}
			log.Printf("wrote cell-grid overlay to %s", *gridOut)
		}

		results = append(results, hogResult{
			Path:       path,
			Width:      len(grid[0]),
			Height:     len(grid),
			Config:     cfg,
			Length:     len(descriptor),
			Descriptor: descriptor,
		})
	}
	if len(results) == 1 {
		return writeJSON(results[0])
	}
	return writeJSON(results)
}

// loadGrid decodes an image through the run cache and converts it to a
// luminance grid, with an optional Gaussian denoise in between.
func loadGrid(path string, denoise float64) (image.Image, [][]float64, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if denoise > 0 {
		img = blur.Gaussian(img, denoise)
	}
	grid, err := imaging.Luminance(img)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, grid, nil
}

// writeJSON prints a result to stdout, indented.
func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
