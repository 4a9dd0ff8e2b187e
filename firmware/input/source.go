// Package input carries raw encoder state from the periodic sampling
// callback to the main loop.
package input

import "sync/atomic"

// Source accumulates encoder ticks and button clicks. It is a
// single-producer/single-consumer handoff: the ~1ms sampling callback
// is the only writer and the main loop's Poll is the only reader.
// Nothing else may touch the counters.
type Source struct {
	ticks  atomic.Int32
	clicks atomic.Int32
}

// AddTicks is called from the sampling callback with the raw count
// change since the previous sample.
func (s *Source) AddTicks(delta int32) {
	if delta == 0 {
		return
	}
	s.ticks.Add(delta)
}

// Click is called from the sampling callback when a button press is
// registered.
func (s *Source) Click() {
	s.clicks.Add(1)
}

// Poll drains the pending input. Called once per main-loop cycle.
func (s *Source) Poll() (ticks int, clicked bool) {
	return int(s.ticks.Swap(0)), s.clicks.Swap(0) > 0
}
