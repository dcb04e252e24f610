package textutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "", Truncate("anything", 0))
	got := Truncate("HakbangQuest", 6)
	assert.Equal(t, 6, VisualWidth(got))
	assert.Contains(t, got, TruncateEllipsis)
}

func TestTruncateStyled_KeepsLineCount(t *testing.T) {
	s := lipgloss.NewStyle().Bold(true).Render("Welcome Back") + "\nSign in"
	out := TruncateStyled(s, 4)
	assert.Equal(t, "Welc\nSign", Strip(out))
	assert.Equal(t, "\n", TruncateStyled(s, 0))
}

func TestIndentAndBlank(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent("a\nb", 2))
	assert.Equal(t, "a\nb", Indent("a\nb", 0))
	assert.Equal(t, "\n\n", Blank("x\ny\nz"))
}

func TestPadRightVisual(t *testing.T) {
	assert.Equal(t, "ab  ", PadRightVisual("ab", 4))
	assert.Equal(t, 3, VisualWidth(PadRightVisual("abcdef", 3)))
}
