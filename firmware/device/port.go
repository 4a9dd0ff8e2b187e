package device

// Port is one motor's addressable 8-bit output port on the I/O
// expander. Implementations must update all 8 lines in a single write.
type Port interface {
	WritePort(value uint8) error
}

// DigitalIn is a single digital input line. machine.Pin satisfies it.
type DigitalIn interface {
	Get() bool
}

// DigitalOut is a single digital output line. machine.Pin satisfies it.
type DigitalOut interface {
	Set(high bool)
}

// Control line positions within a motor port. The reset and sleep
// lines are active low, as is enable; the microstep lines select the
// driver's step subdivision.
const (
	bitReset = iota
	bitSleep
	bitEnable
	bitStep
	bitDir
	bitMS0
	bitMS1
	bitMS2
)

// defaultPortValue leaves the driver awake, not reset, disabled, and
// in 1/8 microstep mode (MS0 and MS1 high).
const defaultPortValue = 1<<bitReset | 1<<bitSleep | 1<<bitEnable | 1<<bitMS0 | 1<<bitMS1
