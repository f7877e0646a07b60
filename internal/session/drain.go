package session

import (
	"context"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Drain ticks the active run until it finishes, without a frame delay.
// callback sees every result; returning false stops early.
func (c *Controller) Drain(ctx context.Context, callback func(sorting.Result) bool) error {
	for c.started && !c.finished {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res := c.Tick()
		if callback != nil && !callback(res) {
			return nil
		}
	}
	return nil
}
