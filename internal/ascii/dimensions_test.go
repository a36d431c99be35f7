package ascii

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDimensions(t *testing.T) {
	tests := []struct {
		name         string
		ow, oh, tw   int
		wantW, wantH int
	}{
		{"square", 10, 10, 10, 10, 5},
		{"square wide target", 100, 100, 80, 80, 40},
		{"landscape", 1920, 1080, 80, 80, 22},
		{"portrait", 600, 800, 60, 60, 40},
		{"odd rounding down", 3, 3, 7, 7, 3},
		{"very wide source", 1000, 10, 10, 10, 0},
		{"single column", 1, 1, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := CalculateDimensions(tt.ow, tt.oh, tt.tw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestCalculateDimensions_Property(t *testing.T) {
	for ow := 1; ow <= 40; ow += 3 {
		for oh := 1; oh <= 40; oh += 5 {
			for tw := 1; tw <= 120; tw += 7 {
				w, h, err := CalculateDimensions(ow, oh, tw)
				require.NoError(t, err)
				assert.Equal(t, tw, w)
				assert.Equal(t, int(math.Floor(float64(oh)/float64(ow)*float64(tw)/2)), h)

				w2, h2, _ := CalculateDimensions(ow, oh, tw)
				assert.Equal(t, w, w2)
				assert.Equal(t, h, h2)
			}
		}
	}
}

func TestCalculateDimensions_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		ow, oh, tw int
	}{
		{"zero width image", 0, 10, 10},
		{"zero height image", 10, 0, 10},
		{"zero target", 10, 10, 0},
		{"negative target", 10, 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CalculateDimensions(tt.ow, tt.oh, tt.tw)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
