package imaging

import "errors"

var (
	// ErrInvalidInput reports an image or grid that cannot be processed at
	// all: zero dimensions or ragged rows.
	ErrInvalidInput = errors.New("invalid input image")

	// ErrInvalidConfiguration reports parameters that cannot apply to an
	// otherwise valid input, such as a non-positive smoothing window or an
	// image whose dimensions are not divisible by the configured cell size.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
