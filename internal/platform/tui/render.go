package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pipe-bird/internal/core"
)

// palette maps core.Color to terminal colors. ColorDefault has no entry and
// leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorNavy:    lipgloss.Color("17"),
	core.ColorGray:    lipgloss.Color("245"),
}

// colorPair is a foreground/background combination.
type colorPair struct {
	fg, bg core.Color
}

// cellStyles holds a style for every color pair. It is built once and only
// read afterwards, so SSH sessions can share it.
var cellStyles = buildCellStyles()

func buildCellStyles() map[colorPair]lipgloss.Style {
	colors := []core.Color{core.ColorDefault}
	for c := range palette {
		colors = append(colors, c)
	}

	styles := make(map[colorPair]lipgloss.Style, len(colors)*len(colors))
	for _, fg := range colors {
		for _, bg := range colors {
			style := lipgloss.NewStyle()
			if c, ok := palette[fg]; ok {
				style = style.Foreground(c)
			}
			if c, ok := palette[bg]; ok {
				style = style.Background(c)
			}
			styles[colorPair{fg, bg}] = style
		}
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.Fg, start.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[pair]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
