// Package viz draws field figures in the terminal.
//
//   - [Canvas]: Braille pixel canvas with a foreground color per cell
//   - [Terminal]: a figure as a framed, colored text block
//   - [Viewer]: Bubble Tea program that shows figures one at a time
//
// # Key Bindings
//
//	q, Esc  - Close the current figure
//	Ctrl+C  - Close all figures and abort
package viz
