// Package widget holds front-end independent UI models.
package widget

import "github.com/san-kum/sortviz/internal/sorting"

type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const placeholder = "Select Algorithm"

// Dropdown is a button that expands into one row per algorithm.
type Dropdown struct {
	Button   Rect
	Open     bool
	Selected sorting.Kind
	kinds    []sorting.Kind
}

func NewDropdown() *Dropdown {
	return &Dropdown{
		Button:   Rect{X: 10, Y: 10, W: 400, H: 60},
		Selected: sorting.None,
		kinds:    sorting.Kinds,
	}
}

// Item is one row of the expanded list.
type Item struct {
	Kind sorting.Kind
	Rect Rect
}

func (d *Dropdown) Items() []Item {
	items := make([]Item, len(d.kinds))
	for i, k := range d.kinds {
		items[i] = Item{
			Kind: k,
			Rect: Rect{X: d.Button.X, Y: d.Button.Y + d.Button.H*float32(i+1), W: d.Button.W, H: d.Button.H},
		}
	}
	return items
}

func (d *Dropdown) Label() string {
	if d.Selected == sorting.None {
		return placeholder
	}
	return d.Selected.String()
}

// Click applies a pointer press. It reports the chosen kind when the press
// lands on an item of the open list.
func (d *Dropdown) Click(x, y float32) (sorting.Kind, bool) {
	if d.Button.Contains(x, y) {
		d.Open = !d.Open
		return sorting.None, false
	}
	if !d.Open {
		return sorting.None, false
	}
	for _, it := range d.Items() {
		if it.Rect.Contains(x, y) {
			d.Selected = it.Kind
			d.Open = false
			return it.Kind, true
		}
	}
	return sorting.None, false
}
