//go:build tinygo

package main

import (
	"github.com/GadgetReboot/GR-StepperIO/firmware/commands"
	"github.com/GadgetReboot/GR-StepperIO/firmware/device"
	"github.com/GadgetReboot/GR-StepperIO/firmware/menu"
)

// cutterControl exposes the machine to the serial console.
type cutterControl struct {
	seq    *device.Sequencer
	cal    *device.Calibration
	sensor *device.HomeSensor
	engine *menu.Engine
}

var _ commands.Controller = (*cutterControl)(nil)

func (c *cutterControl) RunNormalCycle() error {
	return c.seq.RunNormalCycle()
}

func (c *cutterControl) RotateBase() error {
	return c.seq.RotateBase()
}

func (c *cutterControl) SendBladeHome() error {
	return c.seq.SendBladeHome()
}

func (c *cutterControl) AdjustCalibration(delta int) int {
	return c.cal.Adjust(delta)
}

func (c *cutterControl) CalibrationSteps() int {
	return c.cal.Steps()
}

func (c *cutterControl) HomeBlocked() bool {
	return c.sensor.Blocked()
}

func (c *cutterControl) ShowDetail() {
	c.engine.ShowDetail()
}
