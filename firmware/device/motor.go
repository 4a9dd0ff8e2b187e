package device

import (
	"errors"
	"time"
)

const defaultHalfPeriod = 500 * time.Microsecond

// Direction of motor rotation as seen from the driver.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "CCW"
	}
	return "CW"
}

// MotorConfig describes one stepper driver channel on the expander.
type MotorConfig struct {
	Name string
	Port Port
	// HalfPeriod is half of one step pulse. A full step blocks for
	// twice this duration.
	HalfPeriod time.Duration
}

// Motor drives one stepper channel through its expander port. All
// motion is blocking; the caller owns the pacing.
type Motor struct {
	name       string
	port       Port
	halfPeriod time.Duration

	// shadow is the last value written to the port, so single-line
	// changes are one write.
	shadow  uint8
	enabled bool
}

// NewMotor initializes the driver lines to their post-reset defaults:
// awake, not reset, disabled, 1/8 microstep.
func NewMotor(cfg MotorConfig) (*Motor, error) {
	if cfg.Port == nil {
		return nil, errors.New("motor " + cfg.Name + ": port is required")
	}
	if cfg.HalfPeriod == 0 {
		cfg.HalfPeriod = defaultHalfPeriod
	}

	m := &Motor{
		name:       cfg.Name,
		port:       cfg.Port,
		halfPeriod: cfg.HalfPeriod,
		shadow:     defaultPortValue,
	}
	return m, m.port.WritePort(m.shadow)
}

func (m *Motor) set(bit int, high bool) error {
	next := m.shadow
	if high {
		next |= 1 << bit
	} else {
		next &^= 1 << bit
	}
	if next == m.shadow {
		return nil
	}
	m.shadow = next
	return m.port.WritePort(m.shadow)
}

// Enable energizes the driver. The enable line is active low.
func (m *Motor) Enable() error {
	m.enabled = true
	return m.set(bitEnable, false)
}

// Disable de-energizes the driver. The motor freewheels with no
// holding torque.
func (m *Motor) Disable() error {
	m.enabled = false
	return m.set(bitEnable, true)
}

func (m *Motor) Enabled() bool {
	return m.enabled
}

func (m *Motor) SetDirection(d Direction) error {
	return m.set(bitDir, d == CounterClockwise)
}

// Step emits n symmetric step pulses at the motor's configured rate.
// It blocks the caller for n * 2 * HalfPeriod.
func (m *Motor) Step(n int) error {
	for i := 0; i < n; i++ {
		if err := m.set(bitStep, true); err != nil {
			return err
		}
		time.Sleep(m.halfPeriod)
		if err := m.set(bitStep, false); err != nil {
			return err
		}
		time.Sleep(m.halfPeriod)
	}
	return nil
}

// Move is the stepping primitive used by every operation: set the
// direction line, make sure the driver is energized, then pulse.
func (m *Motor) Move(d Direction, steps int) error {
	if err := m.SetDirection(d); err != nil {
		return err
	}
	if !m.enabled {
		if err := m.Enable(); err != nil {
			return err
		}
	}
	return m.Step(steps)
}
