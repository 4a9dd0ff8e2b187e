// Package menu is the rotary-encoder navigation engine for the
// cutter's on-device display: a fixed six-item list shown through a
// sliding three-row window.
package menu

import stepperio "github.com/GadgetReboot/GR-StepperIO"

// Item is one row of the operations list.
type Item struct {
	Op    stepperio.Operation
	Label string
}

// The list is fixed at compile time; the windowing table in state.go
// is only valid for exactly this length.
var items = [ItemCount]Item{
	{stepperio.OperationRunCycle, "Normal Run"},
	{stepperio.OperationRotateBase, "Rotate Base"},
	{stepperio.OperationBladeHome, "Blade Home"},
	{stepperio.OperationCalUp, "Travel +1"},
	{stepperio.OperationCalDown, "Travel -1"},
	{stepperio.OperationReserved, "--"},
}

const (
	// ItemCount is the fixed length of the operations list.
	ItemCount = 6
	// visibleRows is how many list rows fit on the display.
	visibleRows = 3
	// frameCount is how many window positions exist over the list.
	frameCount = ItemCount - visibleRows + 1
)
