package looper

import (
	"sync/atomic"

	"github.com/lixenwraith/padloop/constant"
)

// PlaybackReader replays a bounded window of the loop buffer, skipping
// stored frames according to a speed multiplier. Integer hop positions
// only, no interpolation: aliasing at high speed is accepted. The cursor
// is atomic for the same advisory-read reason as RecordWriter; end and
// speed belong to the audio context alone.
type PlaybackReader struct {
	cursor atomic.Uint32
	end    uint32
	speed  float32
}

// reset restores the initial zero window and speed
func (r *PlaybackReader) reset() {
	r.cursor.Store(0)
	r.end = 0
	r.speed = 0
}

// SetWindow repositions the playback window [start, end] and replay
// speed. Applied between blocks by the audio context only.
func (r *PlaybackReader) SetWindow(start, end uint32, speed float32) {
	r.cursor.Store(start)
	r.end = end
	r.speed = speed
}

// Cursor returns the current read offset in float32 slots
func (r *PlaybackReader) Cursor() uint32 {
	return r.cursor.Load()
}

// WindowEnd returns the inclusive window end offset
func (r *PlaybackReader) WindowEnd() uint32 {
	return r.end
}

// Speed returns the replay speed multiplier
func (r *PlaybackReader) Speed() float32 {
	return r.speed
}

// ProcessBlock writes stored frames to the output block while the cursor
// stays inside both the window and the buffer. Once past either bound the
// remaining output frames are left untouched and the cursor stops
// advancing. The per-frame advance is 2*speed truncated to integer, so
// speed 1 is normal playback and larger speeds skip stored frames.
func (r *PlaybackReader) ProcessBlock(store *SampleStore, out []float32, frames int) {
	cursor := r.cursor.Load()
	step := uint32(2 * r.speed)
	for f := 0; f < frames; f++ {
		if cursor <= r.end && cursor <= constant.BufferLength-1 {
			left, right := store.Read(cursor)
			out[2*f] = left
			out[2*f+1] = right
			cursor += step
		}
	}
	r.cursor.Store(cursor)
}
