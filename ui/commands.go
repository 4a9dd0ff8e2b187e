package ui

import (
	"io"

	stepperio "github.com/GadgetReboot/GR-StepperIO"
)

// commandWriter turns button presses into the firmware's single-byte
// console commands.
type commandWriter struct {
	writer io.Writer
}

func (c commandWriter) send(flag byte) {
	c.writer.Write([]byte{flag})
}

func (c commandWriter) RunCycle()   { c.send(stepperio.CmdRunCycle) }
func (c commandWriter) RotateBase() { c.send(stepperio.CmdRotateBase) }
func (c commandWriter) BladeHome()  { c.send(stepperio.CmdBladeHome) }
func (c commandWriter) TravelUp()   { c.send(stepperio.CmdCalUp) }
func (c commandWriter) TravelDown() { c.send(stepperio.CmdCalDown) }
func (c commandWriter) Status()     { c.send(stepperio.CmdStatus) }
func (c commandWriter) ShowSteps()  { c.send(stepperio.CmdShowSteps) }
