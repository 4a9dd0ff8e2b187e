// Package commands is the cutter's serial console: single flag bytes
// dispatched against the machine, so a bench host can trigger
// everything the front-panel menu can.
package commands

import (
	"strconv"

	stepperio "github.com/GadgetReboot/GR-StepperIO"
)

// Controller is used to control the cutter from the serial console.
type Controller interface {
	RunNormalCycle() error
	RotateBase() error
	SendBladeHome() error
	AdjustCalibration(delta int) int
	CalibrationSteps() int
	HomeBlocked() bool
	ShowDetail()
}

type Command struct {
	Flag        byte
	Run         func(Controller) error
	Description string
}

var (
	RunCycleCommand = &Command{
		Flag: stepperio.CmdRunCycle,
		Run: func(c Controller) error {
			// The bench trigger matches the menu binding: three
			// consecutive cycles per request.
			for range 3 {
				if err := c.RunNormalCycle(); err != nil {
					return err
				}
			}
			return nil
		},
		Description: "Run the full cut cycle three times.",
	}
	RotateBaseCommand = &Command{
		Flag:        stepperio.CmdRotateBase,
		Run:         Controller.RotateBase,
		Description: "Rotate the base platform one full cut rotation.",
	}
	BladeHomeCommand = &Command{
		Flag:        stepperio.CmdBladeHome,
		Run:         Controller.SendBladeHome,
		Description: "Retract the blade to the home sensor.",
	}
	CalUpCommand = &Command{
		Flag: stepperio.CmdCalUp,
		Run: func(c Controller) error {
			println("blade travel:", c.AdjustCalibration(+1))
			return nil
		},
		Description: "Increase the blade travel step count by 1.",
	}
	CalDownCommand = &Command{
		Flag: stepperio.CmdCalDown,
		Run: func(c Controller) error {
			println("blade travel:", c.AdjustCalibration(-1))
			return nil
		},
		Description: "Decrease the blade travel step count by 1.",
	}
	StatusCommand = &Command{
		Flag: stepperio.CmdStatus,
		Run: func(c Controller) error {
			home := "clear"
			if c.HomeBlocked() {
				home = "blocked"
			}
			println("travel=" + strconv.Itoa(c.CalibrationSteps()) + " home=" + home)
			return nil
		},
		Description: "Print the current state.",
	}
	ShowStepsCommand = &Command{
		Flag: stepperio.CmdShowSteps,
		Run: func(c Controller) error {
			c.ShowDetail()
			return nil
		},
		Description: "Show the blade travel detail page on the display.",
	}
	HelpCommand = &Command{
		Flag:        stepperio.CmdHelp,
		Description: "Show all available commands and their descriptions.",
		Run: func(c Controller) error {
			println("Available Commands:")
			for _, cmd := range commands {
				println(string(cmd.Flag) + ": " + cmd.Description)
			}
			return nil
		},
	}
)

var commands = []*Command{
	RunCycleCommand,
	RotateBaseCommand,
	BladeHomeCommand,
	CalUpCommand,
	CalDownCommand,
	StatusCommand,
	ShowStepsCommand,
}

// HelpCommand is appended here rather than in the literal above: its Run
// closure ranges over commands, and listing it statically would be an
// initialization cycle.
func init() {
	commands = append(commands, HelpCommand)
}

// Dispatch runs the command registered for flag. Unknown flags are
// silently ignored so line noise on the serial link is harmless.
func Dispatch(c Controller, flag byte) error {
	for _, cmd := range commands {
		if cmd.Flag == flag {
			return cmd.Run(c)
		}
	}
	return nil
}
