package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hakbang/internal/ui/textutil"
)

func TestEffect_IdentityIsNoop(t *testing.T) {
	in := "Welcome Back\nSign in to your account"
	assert.Equal(t, in, Identity.Apply(in, 40))
}

func TestEffect_InvisibleKeepsHeight(t *testing.T) {
	out := Effect{Opacity: 0, Scale: 1}.Apply("a\nb\nc", 40)
	assert.Equal(t, "\n\n", out)

	out = Effect{Opacity: 1, Scale: 0}.Apply("a\nb", 40)
	assert.Equal(t, "\n", out)
}

func TestEffect_FadeKeepsText(t *testing.T) {
	out := Effect{Opacity: 0.5, Scale: 1}.Apply("Dashboard", 40)
	assert.Contains(t, textutil.Strip(out), "Dashboard")
}

func TestEffect_OffsetYAddsRows(t *testing.T) {
	out := Effect{Opacity: 1, Scale: 1, OffsetY: 50}.Apply("x", 40)
	assert.Equal(t, strings.Repeat("\n", 5)+"x", out)
}

func TestEffect_ScaleCentersAndCrops(t *testing.T) {
	out := Effect{Opacity: 1, Scale: 0.5}.Apply("abcdefghijklmnopqrst", 20)
	assert.Equal(t, "     abcdefghij", out)
}

func TestEffect_OffsetXIndents(t *testing.T) {
	out := Effect{Opacity: 1, Scale: 1, OffsetX: 10}.Apply("x", 40)
	assert.Equal(t, "  x", out)
}

func TestEffect_NegativeOffsetYLiftsAndClips(t *testing.T) {
	out := Effect{Opacity: 1, Scale: 1, OffsetY: -20}.Apply("a\nb\nc", 40)
	assert.Equal(t, "c\n\n", out)

	out = Effect{Opacity: 1, Scale: 1, OffsetY: -100}.Apply("a\nb", 40)
	assert.Equal(t, "\n", out)
}
