package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pipe-bird/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(30, 3)
	s.ClearBg(core.ColorNavy)
	s.DrawText(0, 0, "Score: 3")
	s.Set(5, 2, core.ColorYellow, core.ColorBlack, '@')

	out := RenderScreen(s)

	if !strings.Contains(out, "Score: 3") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if !strings.Contains(out, "@") {
		t.Errorf("rendered output lost the bird: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, expected 2", got)
	}
}

func TestCellStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorBlack, core.ColorRed, core.ColorGreen,
		core.ColorYellow, core.ColorBlue, core.ColorMagenta, core.ColorCyan,
		core.ColorWhite, core.ColorNavy, core.ColorGray,
	}
	for _, fg := range colors {
		for _, bg := range colors {
			if _, ok := cellStyles[colorPair{fg, bg}]; !ok {
				t.Errorf("no style for %v on %v", fg, bg)
			}
		}
	}
}
