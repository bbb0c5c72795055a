// Package viz previews rendered sequences in the terminal.
//
//   - [HalfBlock]: truecolor preview, two pixels per cell using ▀
//   - [Braille]: monochrome preview, eight pixels per cell
//   - [Viewer]: interactive Bubble Tea viewer that re-renders on each key
//
// # Key Bindings
//
//	m/M - Next/previous render mode
//	b   - Cycle boundary policy
//	+/- - Step the automaton rule
//	[/] - Lower/raise the color offset
//	p   - Toggle half-block and braille preview
//	t   - Cycle color themes
//	q   - Quit
package viz
