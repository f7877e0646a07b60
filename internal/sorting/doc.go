// Package sorting implements resumable, single-step sorting algorithms.
//
// Each algorithm is expressed as an explicit cursor bundle ([State]) plus a
// transition function ([Advance]) that performs exactly one unit of work per
// call: one comparison, one swap, or one boundary advance. A frame-driven
// front end calls Advance once per tick and draws the array in between, so
// the frame rate alone controls animation speed.
//
//   - [Kind]: the algorithm variant (Bubble, Insertion, Selection)
//   - [State]: where a paused algorithm resumes
//   - [Result]: highlight set, optional [Tone] request and termination flag
//
// # Example
//
//	values := []int{5, 3, 4, 1, 2}
//	st := sorting.NewState(sorting.Bubble)
//	for {
//	    res := sorting.Advance(values, &st, 5)
//	    if res.Terminated {
//	        break
//	    }
//	}
//
// # Thread Safety
//
// A State and the slice it walks must be driven from a single goroutine.
package sorting
