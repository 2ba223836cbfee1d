package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestAlignToCells(t *testing.T) {
	img := createInMemoryImage(100, 90, color.RGBA{200, 100, 50, 255})

	aligned, err := AlignToCells(img, image.Pt(8, 8))
	if err != nil {
		t.Fatalf("AlignToCells failed: %v", err)
	}

	bounds := aligned.Bounds()
	if bounds.Dx() != 96 || bounds.Dy() != 88 {
		t.Errorf("aligned dimensions: got %dx%d, want 96x88", bounds.Dx(), bounds.Dy())
	}

	// The top-left content must survive the crop.
	r, g, b, _ := aligned.At(bounds.Min.X, bounds.Min.Y).RGBA()
	if uint8(r>>8) != 200 || uint8(g>>8) != 100 || uint8(b>>8) != 50 {
		t.Errorf("top-left pixel: got (%d,%d,%d), want (200,100,50)", r>>8, g>>8, b>>8)
	}
}

func TestAlignToCells_AlreadyAligned(t *testing.T) {
	img := createInMemoryImage(64, 32, color.RGBA{10, 10, 10, 255})

	aligned, err := AlignToCells(img, image.Pt(8, 8))
	if err != nil {
		t.Fatalf("AlignToCells failed: %v", err)
	}
	if aligned != image.Image(img) {
		t.Error("an already-aligned image should be returned unchanged")
	}
}

func TestAlignToCells_Errors(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{0, 0, 0, 255})

	if _, err := AlignToCells(img, image.Pt(0, 8)); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("zero cell width: got %v, want ErrInvalidConfiguration", err)
	}
	if _, err := AlignToCells(img, image.Pt(32, 8)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("image smaller than one cell: got %v, want ErrInvalidInput", err)
	}
}
