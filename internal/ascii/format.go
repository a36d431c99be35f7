package ascii

import "github.com/fatih/color"

// Formatter decorates a single character with its source color.
type Formatter interface {
	Format(ch rune, c RGB) string
}

var (
	TrueColor Formatter = trueColorFormatter{}
	Plain     Formatter = plainFormatter{}
)

type trueColorFormatter struct{}

func (trueColorFormatter) Format(ch rune, c RGB) string {
	fg := color.RGB(int(c.R), int(c.G), int(c.B))
	// output may go to a file or a pipe, so ignore tty detection
	fg.EnableColor()
	return fg.Sprint(string(ch))
}

type plainFormatter struct{}

func (plainFormatter) Format(ch rune, _ RGB) string {
	return string(ch)
}
