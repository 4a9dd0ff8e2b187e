//go:build tinygo

package main

import (
	"github.com/GadgetReboot/GR-StepperIO/firmware/device"

	"tinygo.org/x/drivers/mcp23017"
)

// motorPort maps one 8-bit half of the MCP23017 to a device.Port.
// Half 0 is port A (pins 0-7), half 1 is port B (pins 8-15).
type motorPort struct {
	dev   *mcp23017.Device
	shift uint
}

func expanderPort(dev *mcp23017.Device, half uint) device.Port {
	return motorPort{dev: dev, shift: half * 8}
}

func (p motorPort) WritePort(value uint8) error {
	return p.dev.SetPins(mcp23017.Pins(value)<<p.shift, mcp23017.Pins(0xff)<<p.shift)
}
