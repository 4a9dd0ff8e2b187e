package device

// Calibration is the learned number of blade-motor steps between the
// home trip point and the cutting surface. It lives in RAM only and is
// relearned after a power cycle.
//
// The count is only touched from the main loop, so no locking is
// needed. It is deliberately unbounded: nothing stops the operator
// from adjusting it below zero, and motion calls treat a negative
// count as zero steps.
type Calibration struct {
	steps int
}

func NewCalibration(steps int) *Calibration {
	return &Calibration{steps: steps}
}

// Adjust moves the step count by delta and returns the new value.
func (c *Calibration) Adjust(delta int) int {
	c.steps += delta
	return c.steps
}

// Steps returns the current blade travel step count.
func (c *Calibration) Steps() int {
	return c.steps
}
