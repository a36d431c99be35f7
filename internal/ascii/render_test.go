package ascii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_RenderToString_Plain(t *testing.T) {
	m := &Matrix{
		Width:  2,
		Height: 2,
		Chars:  [][]rune{{'A', 'B'}, {'C', 'D'}},
		Colors: [][]RGB{{{1, 2, 3}, {4, 5, 6}}, {{7, 8, 9}, {10, 11, 12}}},
	}

	r := NewRenderer(TrueColor)
	assert.Equal(t, "AB\nCD", r.RenderToString(m, false))
}

func TestRenderer_RenderToString_Empty(t *testing.T) {
	r := NewRenderer(nil)
	assert.Equal(t, "", r.RenderToString(&Matrix{}, true))
	assert.Equal(t, "", r.RenderToString(&Matrix{}, false))
}

func TestRenderer_FormatLine_Colored(t *testing.T) {
	red := RGB{255, 0, 0}
	blue := RGB{0, 0, 255}

	r := NewRenderer(TrueColor)
	got := r.FormatLine([]rune("AB"), []RGB{red, blue}, true)

	assert.Equal(t, TrueColor.Format('A', red)+TrueColor.Format('B', blue), got)
	assert.Equal(t, 2, strings.Count(got, "\x1b[38;2;"))
	assert.Contains(t, got, "\x1b[38;2;255;0;0mA")
	assert.Contains(t, got, "\x1b[38;2;0;0;255mB")
}

func TestRenderer_FormatLine_NoMerging(t *testing.T) {
	gray := RGB{128, 128, 128}

	r := NewRenderer(TrueColor)
	got := r.FormatLine([]rune("xxx"), []RGB{gray, gray, gray}, true)

	assert.Equal(t, 3, strings.Count(got, "\x1b[38;2;128;128;128m"))
}

func TestRenderer_RenderToString_Colored(t *testing.T) {
	m := &Matrix{
		Width:  1,
		Height: 2,
		Chars:  [][]rune{{'A'}, {'B'}},
		Colors: [][]RGB{{{1, 2, 3}}, {{4, 5, 6}}},
	}

	r := NewRenderer(TrueColor)
	got := r.RenderToString(m, true)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, TrueColor.Format('A', RGB{1, 2, 3}), lines[0])
	assert.Equal(t, TrueColor.Format('B', RGB{4, 5, 6}), lines[1])
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestRenderer_CustomFormatter(t *testing.T) {
	m := &Matrix{
		Width:  2,
		Height: 1,
		Chars:  [][]rune{{'a', 'b'}},
		Colors: [][]RGB{{{}, {}}},
	}

	r := NewRenderer(Plain)
	assert.Equal(t, "ab", r.RenderToString(m, true))
}

func TestTrueColor_Format(t *testing.T) {
	got := TrueColor.Format('@', RGB{12, 34, 56})
	assert.True(t, strings.HasPrefix(got, "\x1b[38;2;12;34;56m@"))
	assert.True(t, strings.HasSuffix(got, "m"))
	assert.Greater(t, len(got), len("\x1b[38;2;12;34;56m@"))
}
