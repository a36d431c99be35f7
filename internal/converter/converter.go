package converter

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/koki-develop/asciimg/internal/ascii"
	"github.com/koki-develop/asciimg/internal/loader"
	"github.com/koki-develop/asciimg/internal/resize"
)

type Decoder interface {
	Decode(ctx context.Context, path string) (image.Image, error)
}

// Resampler must return an image of exactly w x h whose Pix has no row padding.
type Resampler interface {
	Resample(img image.Image, w, h int) (*image.NRGBA, error)
}

// Convert renders the image at path as ASCII art. Every call allocates its own
// buffers, so Convert is safe for concurrent use.
func Convert(ctx context.Context, path string, opts ...Option) (string, error) {
	o := &options{config: DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}
	cfg := o.config
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	converter, err := ascii.NewConverter(cfg.Charset)
	if err != nil {
		return "", err
	}
	resampler := o.resampler
	if resampler == nil {
		r, err := resize.NewResizer(cfg.Filter)
		if err != nil {
			return "", err
		}
		resampler = r
	}
	decoder := o.decoder
	if decoder == nil {
		decoder = loader.New()
	}

	if err := loader.Validate(path); err != nil {
		return "", err
	}

	img, err := decoder.Decode(ctx, path)
	if err != nil {
		if errors.Is(err, ascii.ErrImageLoad) || errors.Is(err, ctx.Err()) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ascii.ErrImageLoad, err)
	}

	sz := img.Bounds()
	w, h, err := ascii.CalculateDimensions(sz.Dx(), sz.Dy(), cfg.Width)
	if err != nil {
		return "", err
	}
	if h == 0 {
		return "", nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	buf, err := resampler.Resample(img, w, h)
	if err != nil {
		return "", err
	}

	m, err := converter.ConvertToASCII(buf.Pix, w, h)
	if err != nil {
		return "", err
	}

	return ascii.NewRenderer(o.formatter).RenderToString(m, cfg.Colored), nil
}
