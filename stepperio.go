// Package stepperio holds the identities shared between the cutter
// firmware and the host-side bench tooling.
package stepperio

// Command flag bytes understood by the firmware's serial console.
const (
	CmdRunCycle   = 'C'
	CmdRotateBase = 'R'
	CmdBladeHome  = 'B'
	CmdCalUp      = '+'
	CmdCalDown    = '-'
	CmdStatus     = 'S'
	CmdShowSteps  = 'V'
	CmdHelp       = '?'
)

// Operation identifies one of the operator-selectable machine operations.
type Operation int

const (
	OperationUnknown Operation = iota
	OperationRunCycle
	OperationRotateBase
	OperationBladeHome
	OperationCalUp
	OperationCalDown
	OperationReserved
)

func (op Operation) String() string {
	switch op {
	case OperationRunCycle:
		return "Normal Run"
	case OperationRotateBase:
		return "Rotate Base"
	case OperationBladeHome:
		return "Blade Home"
	case OperationCalUp:
		return "+1"
	case OperationCalDown:
		return "-1"
	case OperationReserved:
		return "--"
	default:
		fallthrough
	case OperationUnknown:
		return "Unknown"
	}
}
