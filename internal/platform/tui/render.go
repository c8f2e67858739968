package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-jump/internal/core"
	"github.com/vovakirdan/bubble-jump/internal/shop"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPink:          lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorTeal:          lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	core.ColorFoam:          lipgloss.NewStyle().Foreground(lipgloss.Color("152")),
	core.ColorCoral:         lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawMarket draws the market panel over the center of the screen.
func drawMarket(dst *core.Screen, m *shop.Market, cursor, balance int) {
	items := m.Catalog().Items()
	w := core.Min(36, dst.Width())
	h := core.Min(len(items)+5, dst.Height())
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorCoral)
	title := fmt.Sprintf(" MARKET  %dP ", balance)
	dst.DrawTextColored(box.X+(w-utf8.RuneCountInString(title))/2, box.Y, title, core.ColorBrightWhite)

	for i, it := range items {
		y := box.Y + 2 + i
		if y >= box.Bottom()-2 {
			break
		}

		color := core.ColorWhite
		tag := fmt.Sprintf("%dP", it.Price)
		switch {
		case m.Owned(it.ID):
			color = core.ColorGreen
			tag = "owned"
			if m.Selected() == it.ID {
				tag = "active"
			}
		case it.Price > balance:
			color = core.ColorGray
		}
		if i == cursor {
			color = core.ColorBrightYellow
		}

		marker := "  "
		if i == cursor {
			marker = "> "
		}
		line := fmt.Sprintf("%s%c %-10s", marker, it.Glyph, it.Name)
		dst.DrawTextColored(box.X+2, y, line, color)
		dst.DrawTextColored(box.Right()-2-len(tag), y, tag, color)
	}

	dst.DrawTextCentered(box.Bottom()-2, "enter buy  m close", core.ColorGray)
}

// drawAlerts draws active toasts above the bottom edge, newest lowest.
func drawAlerts(dst *core.Screen, alerts []shop.Alert) {
	y := dst.Height() - len(alerts) - 1
	for _, a := range alerts {
		if y >= 1 {
			dst.DrawTextCentered(y, " "+a.Message+" ", core.ColorBrightYellow)
		}
		y++
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
