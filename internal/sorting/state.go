package sorting

// DefaultSize is the number of bars in a session.
const DefaultSize = 100

// State is the cursor bundle of a paused algorithm. Which fields are live
// depends on Kind: Bubble and Insertion use I and J, Selection also uses Min.
type State struct {
	Kind Kind
	I    int
	J    int
	Min  int
	Done bool
}

// NewState returns the start condition for kind.
func NewState(kind Kind) State {
	switch kind {
	case Bubble:
		return State{Kind: Bubble}
	case Insertion:
		return State{Kind: Insertion, I: 1, J: 1}
	case Selection:
		return State{Kind: Selection, I: 0, J: 1, Min: 0}
	default:
		return State{Kind: None, Done: true}
	}
}

// Validate reports whether the cursors satisfy the invariant of their variant
// for an array of length n. Arrays with fewer than two elements are already
// sorted and any cursor position is accepted.
func (s State) Validate(n int) error {
	if n < 2 {
		return nil
	}
	switch s.Kind {
	case Bubble:
		if s.I < 0 || s.I > n-1 {
			return &StateError{State: s, Size: n, Reason: "outer index out of range"}
		}
		if s.J < 0 || s.J > n-1-s.I {
			return &StateError{State: s, Size: n, Reason: "inner index past unsorted suffix"}
		}
	case Insertion:
		if s.I < 1 || s.I > n {
			return &StateError{State: s, Size: n, Reason: "sorted prefix boundary out of range"}
		}
		if s.J < 0 || s.J > s.I {
			return &StateError{State: s, Size: n, Reason: "probe outside sorted prefix"}
		}
	case Selection:
		if s.I < 0 || s.I > n-1 {
			return &StateError{State: s, Size: n, Reason: "sorted prefix boundary out of range"}
		}
		if s.Min < s.I || s.Min >= n {
			return &StateError{State: s, Size: n, Reason: "minimum index outside unsorted suffix"}
		}
		if s.J < s.I || s.J > n {
			return &StateError{State: s, Size: n, Reason: "scan index out of range"}
		}
	case None:
		return nil
	default:
		return &StateError{State: s, Size: n, Reason: "unknown kind"}
	}
	return nil
}
