package sorting

import (
	"fmt"
	"strings"
)

type Kind int

const (
	None Kind = iota - 1
	Bubble
	Insertion
	Selection
)

// Kinds lists the selectable algorithms in menu order.
var Kinds = []Kind{Bubble, Insertion, Selection}

func (k Kind) String() string {
	switch k {
	case Bubble:
		return "Bubble Sort"
	case Insertion:
		return "Insertion Sort"
	case Selection:
		return "Selection Sort"
	default:
		return "None"
	}
}

// Slug is the lowercase command-line name of the algorithm.
func (k Kind) Slug() string {
	switch k {
	case Bubble:
		return "bubble"
	case Insertion:
		return "insertion"
	case Selection:
		return "selection"
	default:
		return "none"
	}
}

func (k Kind) Valid() bool {
	return k == Bubble || k == Insertion || k == Selection
}

// ParseKind maps "bubble", "insertion" or "selection" (any case, with or
// without a "sort" suffix) to a Kind.
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimRight(strings.TrimSuffix(s, "sort"), " _-")
	for _, k := range Kinds {
		if s == k.Slug() {
			return k, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
