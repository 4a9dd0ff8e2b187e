//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/GadgetReboot/GR-StepperIO/firmware/commands"
	"github.com/GadgetReboot/GR-StepperIO/firmware/device"
	"github.com/GadgetReboot/GR-StepperIO/firmware/input"
	"github.com/GadgetReboot/GR-StepperIO/firmware/menu"

	"tinygo.org/x/drivers/encoders"
	"tinygo.org/x/drivers/mcp23017"
)

const (
	expanderAddr = 0x20

	// Initial blade travel guess; relearned by the operator with the
	// Travel +1/-1 menu items after every power cycle.
	defaultTravelSteps = 250
)

func main() {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	if err != nil {
		panic(err)
	}

	expander, err := mcp23017.NewI2C(machine.I2C0, expanderAddr)
	if err != nil {
		panic(err)
	}
	// All 16 expander lines drive the two stepper drivers.
	if err := expander.SetModes([]mcp23017.PinMode{mcp23017.Output}); err != nil {
		panic(err)
	}

	base, err := device.NewMotor(device.MotorConfig{
		Name:       "base",
		Port:       expanderPort(expander, 0),
		HalfPeriod: 200 * time.Microsecond,
	})
	if err != nil {
		panic(err)
	}
	blade, err := device.NewMotor(device.MotorConfig{
		Name:       "blade",
		Port:       expanderPort(expander, 1),
		HalfPeriod: 700 * time.Microsecond,
	})
	if err != nil {
		panic(err)
	}

	sensorPin := machine.GP26
	sensorPin.Configure(machine.PinConfig{Mode: machine.PinInput})
	lampPins := []machine.Pin{machine.GP10, machine.GP11, machine.GP12}
	for _, p := range lampPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	sensor := device.NewHomeSensor(sensorPin, lampPins[0], lampPins[1], lampPins[2])

	cal := device.NewCalibration(defaultTravelSteps)
	seq := device.NewSequencer(base, blade, sensor, cal, device.DefaultSequencerConfig())

	engine := menu.NewEngine(newScreen(), seq, cal)

	var src input.Source
	go sampleInput(&src)

	ctl := &cutterControl{
		seq:    seq,
		cal:    cal,
		sensor: sensor,
		engine: engine,
	}

	for {
		sensor.Sample()

		if err := engine.Render(); err != nil {
			println("render error:", err.Error())
		}

		ticks, clicked := src.Poll()
		if err := engine.Handle(ticks, clicked); err != nil {
			println("error:", err.Error())
		}

		pollSerial(ctl)

		// The scheduler is cooperative and nothing above blocks when
		// the machine is idle; sleeping here lets the encoder sampler
		// run and paces the redraw.
		time.Sleep(time.Millisecond)
	}
}

// sampleInput is the periodic (~1ms) encoder sampler. It only writes
// the input source counters; the display, expander, and sensor belong
// to the main loop.
func sampleInput(src *input.Source) {
	enc := encoders.NewQuadratureViaInterrupt(machine.GP14, machine.GP15)
	// Two raw counts per physical detent; the menu engine's hysteresis
	// halves the running total.
	if err := enc.Configure(encoders.QuadratureConfig{Precision: 2}); err != nil {
		panic(err)
	}

	button := machine.GP13
	button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	lastPos := enc.Position()
	lastPressed := false
	for {
		pos := enc.Position()
		src.AddTicks(int32(pos - lastPos))
		lastPos = pos

		pressed := !button.Get() // active low
		if pressed && !lastPressed {
			src.Click()
		}
		lastPressed = pressed

		time.Sleep(time.Millisecond)
	}
}

// pollSerial services at most one console byte per loop cycle so the
// single-loop model holds.
func pollSerial(c commands.Controller) {
	b, err := machine.Serial.ReadByte()
	if err != nil {
		return
	}
	if err := commands.Dispatch(c, b); err != nil {
		println("error:", err.Error())
	}
}
