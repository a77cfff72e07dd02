// Package playback replays a sorting trace onto a bar surface over time.
//
// A [Scheduler] applies step i of a trace at start + i*Delay. Compare steps
// highlight the pair with the palette's compare color and restore the normal
// color after the flash delay; swap and overwrite steps change bar heights.
// The scheduler holds no timers of its own: the caller drives it with Tick,
// which applies every due step in trace order.
//
// While a playback is running, Start is ignored. There is no cancellation.
package playback
