package device

import (
	"errors"
	"time"
)

// ErrHomingTimeout is returned when MaxHomingSteps is set and the home
// sensor never changed state within that many steps.
var ErrHomingTimeout = errors.New("homing timeout: home sensor never changed state")

// SequencerConfig has the motion constants for the cut cycle.
type SequencerConfig struct {
	// ClearanceSteps is how far past the sensor the blade backs out
	// before re-homing, so the trip point is always approached from
	// the same side.
	ClearanceSteps int
	// CutSteps is one full cut rotation of the base platform.
	CutSteps int
	// SettleDelay is the pause after backing clear of the sensor.
	SettleDelay time.Duration
	// MomentumDelay is the pause before de-energizing a motor that
	// just finished moving.
	MomentumDelay time.Duration
	// MaxHomingSteps caps sensor-seeking loops. Zero means retry
	// forever: a stuck or disconnected sensor stalls the operation
	// permanently with the motor left energized. That matches the
	// physical contract of never giving up on homing early.
	MaxHomingSteps int
}

func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{
		ClearanceSteps: 40,
		CutSteps:       3200,
		SettleDelay:    300 * time.Millisecond,
		MomentumDelay:  500 * time.Millisecond,
	}
}

// Sequencer owns the machine's operations. Every operation blocks the
// calling loop until the motion is complete; operations are never run
// concurrently.
type Sequencer struct {
	base   *Motor
	blade  *Motor
	sensor *HomeSensor
	cal    *Calibration
	cfg    SequencerConfig
}

func NewSequencer(base, blade *Motor, sensor *HomeSensor, cal *Calibration, cfg SequencerConfig) *Sequencer {
	return &Sequencer{
		base:   base,
		blade:  blade,
		sensor: sensor,
		cal:    cal,
		cfg:    cfg,
	}
}

// stepUntil steps the motor one step at a time in the given direction
// until the home sensor reports want. The sensor is sampled before
// every step, so the loop is a no-op when the condition already holds.
func (s *Sequencer) stepUntil(m *Motor, d Direction, want bool) error {
	if err := m.SetDirection(d); err != nil {
		return err
	}
	for n := 0; s.sensor.Sample() != want; n++ {
		if s.cfg.MaxHomingSteps > 0 && n >= s.cfg.MaxHomingSteps {
			return ErrHomingTimeout
		}
		if err := m.Step(1); err != nil {
			return err
		}
	}
	return nil
}

// RunNormalCycle performs one complete cut: home the blade against the
// sensor, advance it the calibrated travel to the cutting surface,
// spin the base platform through one full rotation, then retract.
// Both motors end de-energized.
func (s *Sequencer) RunNormalCycle() error {
	println("Begin cutting operation...")

	if err := s.blade.Enable(); err != nil {
		return err
	}

	// The blade may be resting inside the sensor's dead zone at
	// power-on. Back it out past the trip point and settle before
	// re-homing so the trip point is repeatable.
	if err := s.stepUntil(s.blade, Clockwise, false); err != nil {
		return err
	}
	if err := s.blade.Move(Clockwise, s.cfg.ClearanceSteps); err != nil {
		return err
	}
	time.Sleep(s.cfg.SettleDelay)
	if err := s.stepUntil(s.blade, CounterClockwise, true); err != nil {
		return err
	}

	// Advance to the cutting surface. The blade motor stays energized
	// to hold position while the base turns.
	if err := s.blade.Move(Clockwise, s.cal.Steps()); err != nil {
		return err
	}

	if err := s.base.Move(Clockwise, s.cfg.CutSteps); err != nil {
		return err
	}
	time.Sleep(s.cfg.MomentumDelay)
	if err := s.base.Disable(); err != nil {
		return err
	}

	if err := s.blade.Move(CounterClockwise, s.cal.Steps()); err != nil {
		return err
	}
	time.Sleep(s.cfg.MomentumDelay)
	if err := s.blade.Disable(); err != nil {
		return err
	}

	println("Cutting operation complete...")
	return nil
}

// RotateBase spins the base platform through one full cut rotation and
// de-energizes it. The blade is not involved.
func (s *Sequencer) RotateBase() error {
	println("Rotating base...")

	if err := s.base.Move(Clockwise, s.cfg.CutSteps); err != nil {
		return err
	}
	time.Sleep(s.cfg.MomentumDelay)
	if err := s.base.Disable(); err != nil {
		return err
	}

	println("Rotation complete...")
	return nil
}

// SendBladeHome retracts the blade until the home sensor trips. If the
// sensor already reports home, nothing moves.
func (s *Sequencer) SendBladeHome() error {
	println("Sending blade home...")

	if s.sensor.Sample() {
		println("Blade already home")
		return nil
	}

	if err := s.blade.Enable(); err != nil {
		return err
	}
	if err := s.stepUntil(s.blade, CounterClockwise, true); err != nil {
		return err
	}
	time.Sleep(s.cfg.MomentumDelay)
	if err := s.blade.Disable(); err != nil {
		return err
	}

	println("Blade home")
	return nil
}
