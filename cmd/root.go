package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/koki-develop/asciimg/internal/converter"
	"github.com/koki-develop/asciimg/internal/loader"
	"github.com/koki-develop/asciimg/internal/resize"
	"github.com/koki-develop/asciimg/internal/ui"
	"github.com/spf13/cobra"
)

type flags struct {
	width       int
	color       bool
	noColor     bool
	charset     string
	output      string
	filter      string
	fit         bool
	interactive bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "asciimg <image>",
		Short: "Convert an image into ASCII art",
		Long: "Convert an image into ASCII art for the terminal.\n\nSupported formats: " +
			strings.Join(loader.SupportedExtensions, ", "),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}

	cmd.Flags().IntVarP(&f.width, "width", "w", converter.DefaultWidth, "output width in characters (the viewer uses the window width instead)")
	cmd.Flags().BoolVar(&f.color, "color", converter.DefaultColored, "colorize output with 24-bit escapes")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVarP(&f.charset, "charset", "c", converter.DefaultCharset, "characters ordered from dark to light")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().StringVarP(&f.filter, "filter", "f", resize.DefaultFilter, "resampling filter ("+strings.Join(resize.Filters(), ", ")+")")
	cmd.Flags().BoolVar(&f.fit, "fit", false, "shrink the width so the art fits the terminal")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "open the art in a scrollable viewer")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	cmd.MarkFlagsMutuallyExclusive("interactive", "output")
	cmd.MarkFlagsMutuallyExclusive("interactive", "fit")

	return cmd
}

func run(cmd *cobra.Command, f *flags, path string) error {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)

	cfg := converter.DefaultConfig()
	cfg.Width = f.width
	cfg.Colored = f.color && !f.noColor
	cfg.Charset = f.charset
	cfg.Filter = f.filter

	if f.interactive {
		logger.Debug("starting viewer", "path", path)
		return ui.Start(&ui.Option{Path: path, Options: []converter.Option{converter.WithConfig(cfg)}})
	}

	if f.fit {
		width, err := fitWidth(logger, path, cfg.Width)
		if err != nil {
			return err
		}
		cfg.Width = width
	}

	start := time.Now()
	art, err := converter.Convert(cmd.Context(), path, converter.WithConfig(cfg))
	if err != nil {
		return err
	}
	logger.Debug("converted image",
		"path", path,
		"width", cfg.Width,
		"colored", cfg.Colored,
		"filter", cfg.Filter,
		"bytes", len(art),
		"elapsed", time.Since(start),
	)

	if art != "" {
		art += "\n"
	}

	if f.output != "" {
		if err := os.WriteFile(f.output, []byte(art), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Debug("wrote output", "path", f.output)
		return nil
	}

	_, err = io.WriteString(cmd.OutOrStdout(), art)
	return err
}

var terminalSize = resize.TerminalSize

// fitWidth keeps width when there is no terminal to fit, e.g. when piping.
func fitWidth(logger *slog.Logger, path string, width int) (int, error) {
	cols, rows, err := terminalSize()
	if err != nil {
		logger.Debug("cannot fit to terminal, keeping width", "width", width, "error", err)
		return width, nil
	}
	if err := loader.Validate(path); err != nil {
		return 0, err
	}
	w, h, err := loader.Size(path)
	if err != nil {
		return 0, err
	}
	fitted := min(width, resize.FitWidth(w, h, cols, rows))
	logger.Debug("fitted width to terminal", "requested", width, "width", fitted, "cols", cols, "rows", rows)
	return fitted, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err)
		os.Exit(1)
	}
}
