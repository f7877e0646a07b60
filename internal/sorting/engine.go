package sorting

import "time"

const (
	SwapTone    = 30 * time.Millisecond
	CompareTone = 15 * time.Millisecond

	baseFrequency = 200.0
	pitchSpan     = 1000.0
)

// Tone is a request to play a short sine tone.
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// Result describes the unit of work performed by one Advance call.
type Result struct {
	Highlight  []int
	Tone       *Tone
	Compared   bool
	Swapped    bool
	Terminated bool
}

// Frequency maps a bar value to a pitch between 200 Hz and 1200 Hz.
func Frequency(value, maxValue int) float64 {
	if maxValue <= 0 {
		maxValue = 1
	}
	return baseFrequency + float64(value)/float64(maxValue)*pitchSpan
}

// Advance performs exactly one comparison, swap or boundary advance of the
// algorithm s describes, mutating values and s in place. Once an algorithm
// has terminated every further call is a no-op.
func Advance(values []int, s *State, maxValue int) Result {
	if s.Done {
		return Result{Terminated: true}
	}

	var res Result
	switch s.Kind {
	case Bubble:
		res = bubbleStep(values, s, maxValue)
	case Insertion:
		res = insertionStep(values, s, maxValue)
	case Selection:
		res = selectionStep(values, s, maxValue)
	default:
		res = Result{Terminated: true}
	}

	if res.Terminated {
		s.Done = true
	}
	return res
}

func bubbleStep(a []int, s *State, maxValue int) Result {
	n := len(a)
	if s.I >= n-1 {
		return Result{Terminated: true}
	}

	if s.J < n-1-s.I {
		j := s.J
		res := Result{Compared: true, Highlight: span(n, j, j+1)}
		if a[j] > a[j+1] {
			a[j], a[j+1] = a[j+1], a[j]
			res.Swapped = true
			res.Tone = tone(a[j], maxValue, SwapTone)
		}
		s.J++
		return res
	}

	s.J = 0
	s.I++
	return Result{Highlight: span(n, 0, 1)}
}

func insertionStep(a []int, s *State, maxValue int) Result {
	n := len(a)
	if s.I >= n {
		return Result{Terminated: true}
	}

	if s.J > 0 && a[s.J-1] > a[s.J] {
		j := s.J
		a[j-1], a[j] = a[j], a[j-1]
		s.J--
		return Result{
			Highlight: span(n, j-1, j),
			Tone:      tone(a[j], maxValue, SwapTone),
			Compared:  true,
			Swapped:   true,
		}
	}

	compared := s.J > 0
	s.I++
	s.J = s.I
	return Result{Highlight: span(n, s.I-1, s.I), Compared: compared}
}

func selectionStep(a []int, s *State, maxValue int) Result {
	n := len(a)
	if s.I >= n-1 {
		return Result{Terminated: true}
	}

	if s.J < n {
		res := Result{Compared: true, Tone: tone(a[s.J], maxValue, CompareTone)}
		if a[s.J] < a[s.Min] {
			s.Min = s.J
		}
		s.J++
		res.Highlight = span(n, s.Min, s.J-1)
		return res
	}

	var res Result
	if s.Min != s.I {
		a[s.I], a[s.Min] = a[s.Min], a[s.I]
		res.Swapped = true
		res.Tone = tone(a[s.I], maxValue, SwapTone)
		res.Highlight = span(n, s.I, s.Min)
	}
	s.I++
	s.Min = s.I
	s.J = s.I + 1
	if !res.Swapped {
		res.Highlight = span(n, s.I)
	}
	return res
}

func tone(value, maxValue int, d time.Duration) *Tone {
	return &Tone{Frequency: Frequency(value, maxValue), Duration: d}
}

// span collects the distinct in-range indices among idx.
func span(n int, idx ...int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= n {
			continue
		}
		dup := false
		for _, o := range out {
			if o == i {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, i)
		}
	}
	return out
}
