package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/twoway/pkg/domain"
)

func TestRenderTape_Plain(t *testing.T) {
	tape := domain.NewTape("AB")

	assert.Equal(t, "[⊢] A  B  ⊣ ", RenderTape(tape, 0, false))
	assert.Equal(t, " ⊢ [A] B  ⊣ ", RenderTape(tape, 1, false))
	assert.Equal(t, " ⊢  A  B [⊣]", RenderTape(tape, 3, false))
}

func TestRenderTape_Colored(t *testing.T) {
	out := RenderTapeWith(domain.NewTape("AB"), 2, termenv.TrueColor)

	assert.Contains(t, out, "\x1b[", "escape sequence for the highlighted cell")
	assert.NotContains(t, out, "[B]")
	assert.True(t, strings.HasPrefix(out, " ⊢  A "))
}

func TestRenderOutput(t *testing.T) {
	assert.Equal(t, "ε", RenderOutput(""))
	assert.Equal(t, "AA", RenderOutput("AA"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBannerWith(&buf, termenv.Ascii)

	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(bannerLines))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewRenderer_Plain(t *testing.T) {
	render := NewRenderer(false)
	out, err := render("# Title\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}
