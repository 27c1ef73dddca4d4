// Package looper implements the pad-controlled sample looper core.
//
// One fixed-capacity interleaved stereo buffer is either recorded into or
// played back from, selected by the sign of the depth parameter. Pad press
// gestures rewind the recording or pick a playback window and replay speed
// from a coarse cell grid over the pad surface.
//
// The audio entry point (Effect.Process) is real-time safe: no allocation,
// no blocking, no unbounded loops. Control-context calls (SetParameter,
// TouchEvent) communicate with the audio context only through per-field
// atomics and a bounded gesture queue drained at block start.
package looper
