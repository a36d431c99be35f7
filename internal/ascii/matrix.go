package ascii

import "fmt"

type RGB struct {
	R, G, B uint8
}

// Matrix pairs every character with the color of the pixel it came from.
// Chars[y][x] and Colors[y][x] always describe the same source pixel.
type Matrix struct {
	Width  int
	Height int
	Chars  [][]rune
	Colors [][]RGB
}

type Converter struct {
	charset []rune
}

func NewConverter(charset string) (*Converter, error) {
	runes := []rune(charset)
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: charset must not be empty", ErrInvalidInput)
	}
	return &Converter{charset: runes}, nil
}

// ConvertToASCII builds a Matrix from pix, a row-major RGBA buffer of exactly
// w x h pixels with no row padding.
func (c *Converter) ConvertToASCII(pix []byte, w, h int) (*Matrix, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidInput, w, h)
	}
	if w > 0 && h > len(pix)/4/w {
		return nil, fmt.Errorf("%w: %dx%d pixels do not fit in %d bytes", ErrBufferSizeMismatch, w, h, len(pix))
	}

	m := &Matrix{
		Width:  w,
		Height: h,
		Chars:  make([][]rune, 0, h),
		Colors: make([][]RGB, 0, h),
	}
	for y := 0; y < h; y++ {
		chars := make([]rune, w)
		colors := make([]RGB, w)
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			px := RGB{R: pix[i], G: pix[i+1], B: pix[i+2]}

			ch, err := MapBrightnessToChar(CalculateBrightness(px.R, px.G, px.B), c.charset)
			if err != nil {
				return nil, err
			}
			chars[x] = ch
			colors[x] = px
		}
		m.Chars = append(m.Chars, chars)
		m.Colors = append(m.Colors, colors)
	}
	return m, nil
}
