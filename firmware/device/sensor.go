package device

// HomeSensor wraps the blade's home opto input and the indicator lamps
// that mirror it. The input is active high: high means the blade is
// blocking the sensor, i.e. at or near home.
type HomeSensor struct {
	in    DigitalIn
	lamps []DigitalOut
}

func NewHomeSensor(in DigitalIn, lamps ...DigitalOut) *HomeSensor {
	return &HomeSensor{in: in, lamps: lamps}
}

// Blocked reads the raw input without touching the lamps.
func (s *HomeSensor) Blocked() bool {
	return s.in.Get()
}

// Sample reads the input and mirrors the reading onto every indicator
// lamp: all on when blocked, all off when clear. The reading is never
// cached; callers that need ground truth call Sample again.
func (s *HomeSensor) Sample() bool {
	blocked := s.in.Get()
	for _, lamp := range s.lamps {
		lamp.Set(blocked)
	}
	return blocked
}
