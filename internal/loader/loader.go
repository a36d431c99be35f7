package loader

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/koki-develop/asciimg/internal/ascii"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

// Validate reports whether path names a regular file with a supported image
// extension. It does not read the file.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: file does not exist: %s", ascii.ErrInvalidInput, path)
		}
		return fmt.Errorf("%w: failed to stat %s: %v", ascii.ErrInvalidInput, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: path is not a file: %s", ascii.ErrInvalidInput, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(SupportedExtensions, ext) {
		return fmt.Errorf("%w: unsupported image format: %s. supported formats: %s",
			ascii.ErrInvalidInput, ext, strings.Join(SupportedExtensions, ", "))
	}
	return nil
}

type Loader struct{}

func New() *Loader {
	return &Loader{}
}

func (l *Loader) Decode(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ascii.ErrImageLoad, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ascii.ErrImageLoad, path, err)
	}
	return img, nil
}

// Size reads only the image header.
func Size(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ascii.ErrImageLoad, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %w", ascii.ErrImageLoad, path, err)
	}
	return cfg.Width, cfg.Height, nil
}
