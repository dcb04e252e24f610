package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hakbang/internal/assets"
	"hakbang/internal/ui/textutil"
)

// Animation values are expressed in points as on a phone screen; the
// terminal maps them onto rows and columns.
const (
	pointsPerRow = 10
	pointsPerCol = 5
	// Below this opacity a block is not drawn at all.
	fadeCutoff = 0.05
)

// Effect is the visual state one animation frame applies to a block of text.
type Effect struct {
	Opacity float64 // 0 invisible, 1 opaque
	OffsetX float64 // points to the right
	OffsetY float64 // points downwards
	Scale   float64 // 1 full width, 0 collapsed
}

// Identity leaves content unchanged.
var Identity = Effect{Opacity: 1, Scale: 1}

// Apply renders content through the effect within width columns.
// Width <= 0 disables horizontal scaling.
func (e Effect) Apply(content string, width int) string {
	if e.Opacity <= fadeCutoff || e.Scale <= 0 {
		return textutil.Blank(content)
	}
	out := content
	if e.Opacity < 0.999 {
		out = fade(out, e.Opacity)
	}
	if e.Scale < 0.999 && width > 0 {
		inner := int(math.Round(float64(width) * e.Scale))
		out = textutil.Indent(textutil.TruncateStyled(out, inner), (width-inner)/2)
	}
	if dx := int(math.Round(e.OffsetX / pointsPerCol)); dx > 0 {
		out = textutil.Indent(out, dx)
	}
	switch dy := int(math.Round(e.OffsetY / pointsPerRow)); {
	case dy > 0:
		out = strings.Repeat("\n", dy) + out
	case dy < 0:
		out = liftRows(out, -dy)
	}
	return out
}

// fade drops the block's own colors and draws it in the text color blended
// towards the background.
func fade(s string, opacity float64) string {
	c := assets.Blend(Styles.Theme.Background, Styles.Theme.Text, opacity)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(textutil.Strip(s))
}

// liftRows moves content up by n rows. Rows pushed above the top are clipped
// and the block keeps its height.
func liftRows(s string, n int) string {
	lines := strings.Split(s, "\n")
	n = min(n, len(lines))
	return strings.Join(append(lines[n:], make([]string, n)...), "\n")
}
