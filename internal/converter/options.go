package converter

import (
	"fmt"

	"github.com/koki-develop/asciimg/internal/ascii"
	"github.com/koki-develop/asciimg/internal/resize"
)

const (
	DefaultWidth   = 80
	DefaultColored = true
	DefaultCharset = " .:-=+*#%@"
)

type Config struct {
	Width   int
	Colored bool
	Charset string
	Filter  string
}

func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Colored: DefaultColored,
		Charset: DefaultCharset,
		Filter:  resize.DefaultFilter,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be a positive integer, got %d", ascii.ErrInvalidInput, c.Width)
	}
	if c.Charset == "" {
		return fmt.Errorf("%w: charset must not be empty", ascii.ErrInvalidInput)
	}
	return nil
}

type Option func(*options)

type options struct {
	config    Config
	decoder   Decoder
	resampler Resampler
	formatter ascii.Formatter
}

func WithWidth(width int) Option {
	return func(o *options) {
		o.config.Width = width
	}
}

func WithColor(colored bool) Option {
	return func(o *options) {
		o.config.Colored = colored
	}
}

func WithCharset(charset string) Option {
	return func(o *options) {
		o.config.Charset = charset
	}
}

// WithFilter selects the resampling filter by name. It is ignored when
// WithResampler is also given.
func WithFilter(filter string) Option {
	return func(o *options) {
		o.config.Filter = filter
	}
}

func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

func WithDecoder(d Decoder) Option {
	return func(o *options) {
		o.decoder = d
	}
}

func WithResampler(r Resampler) Option {
	return func(o *options) {
		o.resampler = r
	}
}

func WithFormatter(f ascii.Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}
