//go:build tinygo

package main

import (
	"image/color"
	"machine"

	"github.com/GadgetReboot/GR-StepperIO/firmware/menu"

	"tinygo.org/x/drivers/st7735"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var menuFont = &proggy.TinySZ8pt7b

// tftScreen adapts the ST7735 TFT to the menu's Screen interface.
type tftScreen struct {
	d *st7735.Device
}

func newScreen() menu.Screen {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 12 * machine.MHz,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
	})
	if err != nil {
		panic(err)
	}

	display := st7735.New(machine.SPI0, machine.GP20, machine.GP21, machine.GP17, machine.GP22)
	display.Configure(st7735.Config{Rotation: st7735.ROTATION_90})

	return &tftScreen{d: &display}
}

func (s *tftScreen) Fill(c color.RGBA) {
	s.d.FillScreen(c)
}

func (s *tftScreen) Text(x, y int16, text string, fg, bg color.RGBA) {
	// Paint the background box first; tinyfont only draws glyph pixels.
	_, w := tinyfont.LineWidth(menuFont, text)
	s.d.FillRectangle(x-2, y-10, int16(w)+4, 13, bg)
	tinyfont.WriteLine(s.d, menuFont, x, y, text, fg)
}

func (s *tftScreen) Flush() error {
	return s.d.Display()
}
