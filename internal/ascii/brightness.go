package ascii

import (
	"fmt"
	"math"
)

const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

func CalculateBrightness(r, g, b uint8) float64 {
	// explicit conversions keep the products from being fused, so white is exactly 255
	return float64(float64(r)*lumaR) + float64(float64(g)*lumaG) + float64(float64(b)*lumaB)
}

func MapBrightnessToChar(brightness float64, charset []rune) (rune, error) {
	if len(charset) == 0 {
		return 0, fmt.Errorf("%w: charset must not be empty", ErrInvalidInput)
	}
	if math.IsNaN(brightness) || brightness < 0 || brightness > 255 {
		return 0, fmt.Errorf("%w: brightness %v out of range [0, 255]", ErrInvalidInput, brightness)
	}

	i := int(math.Floor(brightness / 255 * float64(len(charset)-1)))
	return charset[i], nil
}
