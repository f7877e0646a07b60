package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/widget"
)

func (a *App) drawBars(snap session.Snapshot) {
	n := len(snap.Values)
	if n == 0 {
		return
	}

	barWidth := float32(a.Width) / float32(n)
	lit := make(map[int]bool, len(snap.Highlight))
	for _, i := range snap.Highlight {
		lit[i] = true
	}

	scale := float32(a.Height) / float32(snap.MaxValue)
	for i, v := range snap.Values {
		h := float32(v) * scale
		col := ColBar
		switch {
		case snap.Finished:
			col = ColDone
		case lit[i]:
			col = ColHighlight
		}
		rl.DrawRectangleRec(rl.NewRectangle(float32(i)*barWidth, float32(a.Height)-h, barWidth-1, h), col)
	}
}

func (a *App) drawDropdown() {
	a.drawPanel(a.Dropdown.Button, a.Dropdown.Label())
	if !a.Dropdown.Open {
		return
	}
	for _, it := range a.Dropdown.Items() {
		a.drawPanel(it.Rect, it.Kind.String())
	}
}

func (a *App) drawPanel(r widget.Rect, label string) {
	rec := rl.NewRectangle(r.X, r.Y, r.W, r.H)
	rl.DrawRectangleRec(rec, ColPanel)
	rl.DrawRectangleLinesEx(rec, 2, ColOutline)
	a.drawText(label, r.X+15, r.Y+10, fontSize, ColText)
}

func (a *App) drawStatus(snap session.Snapshot) {
	if !snap.Started {
		return
	}
	status := "SORTING"
	if snap.Finished {
		status = "DONE"
	}
	line := fmt.Sprintf("%s  steps %d  comparisons %d  swaps %d  %d FPS",
		status, snap.Stats.Steps, snap.Stats.Comparisons, snap.Stats.Swaps, rl.GetFPS())
	a.drawText(line, 430, 24, 20, ColTextDim)
}
