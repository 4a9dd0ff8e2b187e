package device

import (
	"testing"
	"time"
)

// recorderPort records every byte written to the port.
type recorderPort struct {
	writes []uint8
}

func (p *recorderPort) WritePort(v uint8) error {
	p.writes = append(p.writes, v)
	return nil
}

func (p *recorderPort) last() uint8 {
	return p.writes[len(p.writes)-1]
}

func newTestMotor(t *testing.T) (*Motor, *recorderPort) {
	t.Helper()
	port := &recorderPort{}
	m, err := NewMotor(MotorConfig{Name: "test", Port: port, HalfPeriod: time.Nanosecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m, port
}

func TestNewMotorDefaults(t *testing.T) {
	_, port := newTestMotor(t)

	if len(port.writes) != 1 {
		t.Fatalf("expected one initialization write, got %d", len(port.writes))
	}

	v := port.writes[0]
	checks := []struct {
		name string
		bit  int
		high bool
	}{
		{"reset released", bitReset, true},
		{"not sleeping", bitSleep, true},
		{"driver disabled", bitEnable, true},
		{"step idle", bitStep, false},
		{"microstep 0 high", bitMS0, true},
		{"microstep 1 high", bitMS1, true},
		{"microstep 2 low", bitMS2, false},
	}
	for _, c := range checks {
		if got := v&(1<<c.bit) != 0; got != c.high {
			t.Errorf("%s: bit %d = %t, expected %t", c.name, c.bit, got, c.high)
		}
	}
}

func TestMotorEnableDisable(t *testing.T) {
	m, port := newTestMotor(t)

	if err := m.Enable(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Enabled() {
		t.Error("expected motor to report enabled")
	}
	if port.last()&(1<<bitEnable) != 0 {
		t.Error("enable line should be low when energized")
	}

	if err := m.Disable(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Enabled() {
		t.Error("expected motor to report disabled")
	}
	if port.last()&(1<<bitEnable) == 0 {
		t.Error("enable line should be high when de-energized")
	}
}

func TestMotorStepPulses(t *testing.T) {
	m, port := newTestMotor(t)
	before := len(port.writes)

	if err := m.Step(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pulses := port.writes[before:]
	if len(pulses) != 6 {
		t.Fatalf("expected 6 writes for 3 steps, got %d", len(pulses))
	}
	for i, v := range pulses {
		high := v&(1<<bitStep) != 0
		if high != (i%2 == 0) {
			t.Errorf("write %d: step line = %t, expected %t", i, high, i%2 == 0)
		}
	}
}

func TestMotorMoveSetsDirectionAndEnables(t *testing.T) {
	m, port := newTestMotor(t)

	if err := m.Move(CounterClockwise, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Enabled() {
		t.Error("Move should energize the motor")
	}
	if port.last()&(1<<bitDir) == 0 {
		t.Error("direction line should be high for counter-clockwise")
	}

	if err := m.Move(Clockwise, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port.last()&(1<<bitDir) != 0 {
		t.Error("direction line should be low for clockwise")
	}
}

func TestNewMotorRequiresPort(t *testing.T) {
	_, err := NewMotor(MotorConfig{Name: "test"})
	if err == nil {
		t.Error("expected error for missing port")
	}
}
