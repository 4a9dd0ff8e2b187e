package menu

// Page is which screen the display is showing.
type Page int

const (
	PageList Page = iota
	PageDetail
)

// State is the navigation position: which page is showing, which of
// the six items is selected (1-based), and which three-row window
// frames it. PrevSelected is the selection before the last move; the
// down transition's frame rule is edge-triggered on it.
//
// The only valid (Selected, Frame) pairs are the ones where the
// selection falls inside the window; anything else is a programming
// error, not a runtime condition.
type State struct {
	Page         Page
	Selected     int // 1..ItemCount
	Frame        int // 1..frameCount
	PrevSelected int
}

func NewState() State {
	return State{Page: PageList, Selected: 1, Frame: 1, PrevSelected: 1}
}

// MoveDown advances the selection, clamped at the last item with no
// wraparound. The frame advances only when the new selection crosses
// out of the rows that were visible under the previous frame: coming
// from item 2 onto 3, from 3 onto 4, or from 4 onto 5.
func (s State) MoveDown() State {
	prev := s.Selected
	if s.Selected < ItemCount {
		s.Selected++
	}
	if s.Frame < frameCount {
		switch {
		case s.Selected == 3 && prev == 2,
			s.Selected == 4 && prev == 3,
			s.Selected == 5 && prev == 4:
			s.Frame++
		}
	}
	s.PrevSelected = prev
	return s
}

// MoveUp retreats the selection, clamped at the first item. The frame
// retreats exactly when leaving the pairs (2,2), (3,3), (4,4): the
// down rule run in reverse, driven by the current state.
func (s State) MoveUp() State {
	prev := s.Selected
	if s.Selected == s.Frame && s.Frame > 1 {
		s.Frame--
	}
	if s.Selected > 1 {
		s.Selected--
	}
	s.PrevSelected = prev
	return s
}

// Window returns the three item numbers drawn top to bottom under the
// current frame and which of those rows (0..2) is the selection.
func (s State) Window() (rows [visibleRows]int, highlighted int) {
	for i := range rows {
		rows[i] = s.Frame + i
	}
	highlighted = s.Selected - s.Frame
	if highlighted < 0 || highlighted >= visibleRows {
		panic("menu: selection outside visible window")
	}
	return rows, highlighted
}
