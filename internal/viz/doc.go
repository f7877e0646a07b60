// Package viz provides the terminal front end for sortviz.
//
// The package implements a Bubble Tea program that drives a
// [session.Controller] once per tick and draws the array as vertical bars:
//
//   - [Model]: tea.Model owning the frame clock and key handling
//   - [Theme]: color schemes, cycled with T
//   - an asciigraph chart of cumulative swaps under the bars
//
// # Key Bindings
//
//	1 / B - Bubble sort
//	2 / I - Insertion sort
//	3 / S - Selection sort
//	R     - Restart the current algorithm on a new array
//	T     - Cycle color themes
//	Q     - Quit
package viz
