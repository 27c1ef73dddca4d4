package looper

// SampleStore owns the fixed-capacity interleaved stereo loop buffer.
// The buffer is injected at Init and never resized or reallocated; it is
// always addressed in pairs (left, right) at even slot offsets.
type SampleStore struct {
	buf []float32
}

func newSampleStore(buf []float32) *SampleStore {
	return &SampleStore{buf: buf}
}

// Write overwrites the stereo pair at offset. Callers must clip offset so
// that offset+1 stays inside the buffer; the cursors guarantee this.
func (s *SampleStore) Write(offset uint32, left, right float32) {
	s.buf[offset] = left
	s.buf[offset+1] = right
}

// Read returns the stereo pair stored at offset. Same precondition as Write.
func (s *SampleStore) Read(offset uint32) (left, right float32) {
	return s.buf[offset], s.buf[offset+1]
}

// Len returns the buffer capacity in float32 slots
func (s *SampleStore) Len() uint32 {
	return uint32(len(s.buf))
}

// Clear zeroes the whole buffer. Init-time only, never on the audio path.
func (s *SampleStore) Clear() {
	for i := range s.buf {
		s.buf[i] = 0
	}
}
