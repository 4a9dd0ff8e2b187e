package menu

import (
	"image/color"
	"strconv"
)

// Screen is the drawing capability the menu needs from the display:
// text at pixel coordinates with foreground/background colors, plus an
// explicit frame commit.
type Screen interface {
	Fill(c color.RGBA)
	Text(x, y int16, s string, fg, bg color.RGBA)
	Flush() error
}

var (
	colorBG = color.RGBA{A: 255}
	colorFG = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Fixed page layout. Text y coordinates are glyph baselines.
const (
	textLeft  = 4
	headerY   = 12
	firstRowY = 28
	rowPitch  = 14
)

// Render redraws the whole current page and commits the frame. The
// display is rewritten every poll cycle rather than diffed.
func (e *Engine) Render() error {
	e.screen.Fill(colorBG)

	switch e.state.Page {
	case PageDetail:
		e.renderDetail()
	default:
		e.renderList()
	}

	return e.screen.Flush()
}

func (e *Engine) renderList() {
	e.screen.Text(textLeft, headerY, "Cutter  T="+strconv.Itoa(e.cal.Steps()), colorFG, colorBG)

	rows, highlighted := e.state.Window()
	for i, item := range rows {
		y := firstRowY + int16(i)*rowPitch
		fg, bg := colorFG, colorBG
		if i == highlighted {
			fg, bg = colorBG, colorFG
		}
		e.screen.Text(textLeft, y, items[item-1].Label, fg, bg)
	}
}

func (e *Engine) renderDetail() {
	e.screen.Text(textLeft, headerY, "Blade travel", colorFG, colorBG)
	e.screen.Text(textLeft, firstRowY, strconv.Itoa(e.cal.Steps())+" steps", colorFG, colorBG)
}
