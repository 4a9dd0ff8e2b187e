package commands

import (
	"errors"
	"testing"

	stepperio "github.com/GadgetReboot/GR-StepperIO"
)

type fakeController struct {
	cycles   int
	rotates  int
	homes    int
	travel   int
	blocked  bool
	details  int
	cycleErr error
}

func (c *fakeController) RunNormalCycle() error {
	c.cycles++
	return c.cycleErr
}

func (c *fakeController) RotateBase() error {
	c.rotates++
	return nil
}

func (c *fakeController) SendBladeHome() error {
	c.homes++
	return nil
}

func (c *fakeController) AdjustCalibration(delta int) int {
	c.travel += delta
	return c.travel
}

func (c *fakeController) CalibrationSteps() int { return c.travel }
func (c *fakeController) HomeBlocked() bool     { return c.blocked }
func (c *fakeController) ShowDetail()           { c.details++ }

func TestDispatch(t *testing.T) {
	tests := []struct {
		name  string
		flag  byte
		check func(t *testing.T, c *fakeController)
	}{
		{"RunCycleRunsThreeTimes", stepperio.CmdRunCycle, func(t *testing.T, c *fakeController) {
			if c.cycles != 3 {
				t.Errorf("expected 3 cycles, got %d", c.cycles)
			}
		}},
		{"RotateBase", stepperio.CmdRotateBase, func(t *testing.T, c *fakeController) {
			if c.rotates != 1 {
				t.Errorf("expected 1 rotate, got %d", c.rotates)
			}
		}},
		{"BladeHome", stepperio.CmdBladeHome, func(t *testing.T, c *fakeController) {
			if c.homes != 1 {
				t.Errorf("expected 1 home, got %d", c.homes)
			}
		}},
		{"CalUp", stepperio.CmdCalUp, func(t *testing.T, c *fakeController) {
			if c.travel != 101 {
				t.Errorf("expected travel 101, got %d", c.travel)
			}
		}},
		{"CalDown", stepperio.CmdCalDown, func(t *testing.T, c *fakeController) {
			if c.travel != 99 {
				t.Errorf("expected travel 99, got %d", c.travel)
			}
		}},
		{"ShowSteps", stepperio.CmdShowSteps, func(t *testing.T, c *fakeController) {
			if c.details != 1 {
				t.Errorf("expected 1 detail request, got %d", c.details)
			}
		}},
		{"UnknownFlagIgnored", 'x', func(t *testing.T, c *fakeController) {
			if c.cycles+c.rotates+c.homes+c.details != 0 || c.travel != 100 {
				t.Error("unknown flag must not dispatch anything")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeController{travel: 100}
			if err := Dispatch(c, tt.flag); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestDispatchStopsOnCycleError(t *testing.T) {
	c := &fakeController{cycleErr: errors.New("sensor fault")}

	if err := Dispatch(c, stepperio.CmdRunCycle); err == nil {
		t.Fatal("expected error")
	}
	if c.cycles != 1 {
		t.Errorf("expected dispatch to stop after the failing cycle, got %d", c.cycles)
	}
}

func TestHelpCoversAllCommands(t *testing.T) {
	if err := Dispatch(&fakeController{}, stepperio.CmdHelp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[byte]bool{}
	for _, cmd := range commands {
		if seen[cmd.Flag] {
			t.Errorf("duplicate command flag %q", cmd.Flag)
		}
		seen[cmd.Flag] = true
		if cmd.Description == "" {
			t.Errorf("command %q has no description", cmd.Flag)
		}
	}
}
