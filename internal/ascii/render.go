package ascii

import "strings"

type Renderer struct {
	formatter Formatter
}

func NewRenderer(f Formatter) *Renderer {
	if f == nil {
		f = TrueColor
	}
	return &Renderer{formatter: f}
}

func (r *Renderer) FormatLine(chars []rune, colors []RGB, colored bool) string {
	if !colored {
		return string(chars)
	}

	b := new(strings.Builder)
	for i, ch := range chars {
		b.WriteString(r.formatter.Format(ch, colors[i]))
	}
	return b.String()
}

func (r *Renderer) RenderToString(m *Matrix, colored bool) string {
	lines := make([]string, 0, len(m.Chars))
	for y := range m.Chars {
		lines = append(lines, r.FormatLine(m.Chars[y], m.Colors[y], colored))
	}
	return strings.Join(lines, "\n")
}
