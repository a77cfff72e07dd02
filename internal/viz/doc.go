// Package viz provides the interactive terminal sorting visualizer.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: owns the bars, the selected algorithm and the playback scheduler
//   - [RenderBars]: draws bars with eighth-block glyphs, colored per bar
//   - Theme selection with 3 built-in color schemes and one bar palette per algorithm
//
// # Key Bindings
//
//	1-4   - Select quick, heap, merge or bubble sort
//	N     - Generate a new random array
//	Enter - Play the selected algorithm
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
//
// Selecting, regenerating and playing are ignored while a playback is running.
package viz
