package input

import "testing"

func TestSourcePollDrains(t *testing.T) {
	var src Source

	src.AddTicks(2)
	src.AddTicks(-1)
	src.Click()

	ticks, clicked := src.Poll()
	if ticks != 1 {
		t.Errorf("expected 1 tick, got %d", ticks)
	}
	if !clicked {
		t.Error("expected clicked")
	}

	ticks, clicked = src.Poll()
	if ticks != 0 || clicked {
		t.Errorf("expected drained source, got ticks=%d clicked=%t", ticks, clicked)
	}
}

func TestSourceMultipleClicksCoalesce(t *testing.T) {
	var src Source

	src.Click()
	src.Click()

	if _, clicked := src.Poll(); !clicked {
		t.Error("expected clicked")
	}
	if _, clicked := src.Poll(); clicked {
		t.Error("clicks should not carry over after a poll")
	}
}
