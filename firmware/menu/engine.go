package menu

import (
	"time"

	stepperio "github.com/GadgetReboot/GR-StepperIO"
)

// settleDelay is the quiescent period after a registered knob detent,
// acting as coarse debounce.
const settleDelay = 150 * time.Millisecond

// Actions is what the menu can trigger on the machine. Implemented by
// the operation sequencer.
type Actions interface {
	RunNormalCycle() error
	RotateBase() error
	SendBladeHome() error
}

// Adjuster is the calibration store surface the menu needs.
type Adjuster interface {
	Adjust(delta int) int
	Steps() int
}

// Engine owns the navigation state and turns raw encoder output into
// moves and activations. It runs entirely on the main loop; an
// activation blocks the loop until the dispatched operation finishes.
type Engine struct {
	state   State
	screen  Screen
	actions Actions
	cal     Adjuster

	// Raw tick accumulator for the two-ticks-per-detent knob. A
	// direction event registers only when the halved running total
	// moves past the last registered notch.
	accumTicks int
	lastNotch  int

	settle time.Duration
}

func NewEngine(screen Screen, actions Actions, cal Adjuster) *Engine {
	return &Engine{
		state:   NewState(),
		screen:  screen,
		actions: actions,
		cal:     cal,
		settle:  settleDelay,
	}
}

// State returns the current navigation position.
func (e *Engine) State() State {
	return e.state
}

// ShowDetail flips to the blade-travel detail page. The next click
// returns to the list.
func (e *Engine) ShowDetail() {
	e.state.Page = PageDetail
}

// Handle consumes one poll's worth of encoder output: a raw tick delta
// and a click flag. The encoder reports two raw counts per physical
// detent, so deltas accumulate and a move registers per 2-count change.
// Each registered move is followed by the settle delay before more
// input is read.
func (e *Engine) Handle(ticks int, clicked bool) error {
	if clicked {
		return e.activate()
	}

	e.accumTicks += ticks
	notch := e.accumTicks / 2
	for notch > e.lastNotch {
		e.lastNotch++
		e.state = e.state.MoveDown()
		time.Sleep(e.settle)
	}
	for notch < e.lastNotch {
		e.lastNotch--
		e.state = e.state.MoveUp()
		time.Sleep(e.settle)
	}
	return nil
}

// activate dispatches the selected item. On the detail page a click
// just returns to the list.
func (e *Engine) activate() error {
	if e.state.Page == PageDetail {
		e.state.Page = PageList
		return nil
	}

	switch items[e.state.Selected-1].Op {
	case stepperio.OperationRunCycle:
		// One activation performs three consecutive cut cycles.
		for range 3 {
			if err := e.actions.RunNormalCycle(); err != nil {
				return err
			}
		}
	case stepperio.OperationRotateBase:
		return e.actions.RotateBase()
	case stepperio.OperationBladeHome:
		return e.actions.SendBladeHome()
	case stepperio.OperationCalUp:
		e.cal.Adjust(+1)
	case stepperio.OperationCalDown:
		e.cal.Adjust(-1)
	}
	return nil
}
