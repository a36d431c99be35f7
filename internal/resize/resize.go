package resize

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sort"

	"github.com/koki-develop/asciimg/internal/ascii"
	"github.com/nfnt/resize"
	"github.com/qeesung/image2ascii/convert"
	"golang.org/x/image/draw"
	"golang.org/x/term"
)

const DefaultFilter = "lanczos3"

var kernels = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

var scalers = map[string]draw.Scaler{
	"catmullrom":     draw.CatmullRom,
	"approxbilinear": draw.ApproxBiLinear,
}

func Filters() []string {
	names := make([]string, 0, len(kernels)+len(scalers))
	for name := range kernels {
		names = append(names, name)
	}
	for name := range scalers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Resizer struct {
	kernel resize.InterpolationFunction
	scaler draw.Scaler
}

func NewResizer(filter string) (*Resizer, error) {
	if filter == "" {
		filter = DefaultFilter
	}
	if k, ok := kernels[filter]; ok {
		return &Resizer{kernel: k}, nil
	}
	if s, ok := scalers[filter]; ok {
		return &Resizer{scaler: s}, nil
	}
	return nil, fmt.Errorf("%w: unknown filter %q, available: %v", ascii.ErrInvalidInput, filter, Filters())
}

// Resample scales img to exactly w x h. The result has no row padding, so its
// Pix is a plain row-major RGBA buffer.
func (r *Resizer) Resample(img image.Image, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: cannot resample to %dx%d", ascii.ErrInvalidInput, w, h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if r.scaler != nil {
		r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst, nil
	}

	scaled := resize.Resize(uint(w), uint(h), img, r.kernel)
	draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	return dst, nil
}

var fitHandler = convert.NewResizeHandler().(*convert.ImageResizeHandler)

// FitWidth returns the largest column count, at most cols, whose rendering of
// an imgW x imgH image is no taller than rows. When even a single column is too
// tall it returns 1.
func FitWidth(imgW, imgH, cols, rows int) int {
	if cols <= 0 {
		return 1
	}
	if imgW <= 0 || imgH <= 0 || rows <= 0 {
		return cols
	}

	fits := func(w int) bool {
		_, h, err := ascii.CalculateDimensions(imgW, imgH, w)
		return err == nil && h <= rows
	}

	// CalcFitSize uses its own cell ratio, so its answer is only a starting point
	fw, _ := fitHandler.CalcFitSize(float64(cols), float64(rows), float64(imgW), float64(imgH))
	w := max(1, min(int(fw), cols))
	for w < cols && fits(w+1) {
		w++
	}
	for w > 1 && !fits(w) {
		w--
	}
	return w
}

func TerminalSize() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("stdout is not a terminal")
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get terminal size: %w", err)
	}
	return cols, rows, nil
}
