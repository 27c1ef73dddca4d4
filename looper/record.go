package looper

import (
	"sync/atomic"

	"github.com/lixenwraith/padloop/constant"
)

// RecordWriter appends input frames at a monotonically increasing write
// cursor. The cursor starts at the BufferLength sentinel (recording
// inactive) and is rewound to 0 only by a record-start gesture. The
// cursor is atomic so display surfaces can observe progress; only the
// audio context writes it outside reset.
type RecordWriter struct {
	cursor atomic.Uint32
}

// reset restores the inactive sentinel
func (w *RecordWriter) reset() {
	w.cursor.Store(constant.BufferLength)
}

// Start rewinds the cursor to the buffer start, overwriting any previous
// recording on the next block.
func (w *RecordWriter) Start() {
	w.cursor.Store(0)
}

// Cursor returns the current write offset in float32 slots
func (w *RecordWriter) Cursor() uint32 {
	return w.cursor.Load()
}

// ProcessBlock copies frames of interleaved stereo input into the store
// until the cursor runs off the end of the buffer. Frames past the end
// are dropped. Output is never written in record mode, so the caller's
// output block passes through untouched.
func (w *RecordWriter) ProcessBlock(store *SampleStore, in []float32, frames int) {
	cursor := w.cursor.Load()
	for f := 0; f < frames; f++ {
		// Cursor is always even, so <= BufferLength-1 admits the last
		// full pair before parking at the sentinel.
		if cursor <= constant.BufferLength-1 {
			store.Write(cursor, in[2*f], in[2*f+1])
			cursor += 2
		}
	}
	w.cursor.Store(cursor)
}
