package ascii

import (
	"fmt"
	"math"
)

// CharAspectRatio is how much taller a terminal cell is than it is wide.
const CharAspectRatio = 2.0

// CalculateDimensions returns the character grid for an image of ow x oh
// pixels rendered tw columns wide. The height may be 0 for very wide images.
func CalculateDimensions(ow, oh, tw int) (int, int, error) {
	if ow <= 0 || oh <= 0 {
		return 0, 0, fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidInput, ow, oh)
	}
	if tw <= 0 {
		return 0, 0, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidInput, tw)
	}

	h := math.Floor(float64(oh) / float64(ow) * float64(tw) / CharAspectRatio)
	return tw, int(h), nil
}
