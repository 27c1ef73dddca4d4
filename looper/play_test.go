package looper

import (
	"testing"

	"github.com/lixenwraith/padloop/constant"
)

// storeWithRamp fills the store with frame index values for easy checks
func storeWithRamp(frames int) *SampleStore {
	store := newSampleStore(make([]float32, constant.BufferLength))
	for f := 0; f < frames; f++ {
		store.Write(uint32(2*f), float32(f), -float32(f))
	}
	return store
}

// TestPlaybackNormalSpeed verifies speed 1 reproduces the window
// frame-for-frame until the cursor passes the end
func TestPlaybackNormalSpeed(t *testing.T) {
	store := storeWithRamp(512)
	var play PlaybackReader
	play.SetWindow(0, 62, 1) // frames 0..31

	out := make([]float32, 2*64)
	play.ProcessBlock(store, out, 64)

	for f := 0; f < 32; f++ {
		if out[2*f] != float32(f) || out[2*f+1] != -float32(f) {
			t.Fatalf("Frame %d: expected (%f, %f), got (%f, %f)", f, float32(f), -float32(f), out[2*f], out[2*f+1])
		}
	}
	// Frames past the window must be untouched (still zero here)
	for f := 32; f < 64; f++ {
		if out[2*f] != 0 || out[2*f+1] != 0 {
			t.Fatalf("Frame %d: expected untouched output, got (%f, %f)", f, out[2*f], out[2*f+1])
		}
	}
}

// TestPlaybackSkipsAtHigherSpeed verifies output frame i carries stored
// frame a/2 + i*k for speed k
func TestPlaybackSkipsAtHigherSpeed(t *testing.T) {
	const k = 3
	store := storeWithRamp(1024)
	var play PlaybackReader
	play.SetWindow(100, 400, k) // frames 50..200

	const frames = 60
	out := make([]float32, 2*frames)
	play.ProcessBlock(store, out, frames)

	for i := 0; i < frames; i++ {
		cursor := 100 + uint32(i)*2*k
		if cursor > 400 {
			break
		}
		want := float32(cursor / 2)
		if out[2*i] != want {
			t.Fatalf("Output frame %d: expected stored frame %f, got %f", i, want, out[2*i])
		}
	}

	if play.Cursor() <= 400 {
		t.Errorf("Expected cursor past window end 400, got %d", play.Cursor())
	}
}

// TestPlaybackLeavesOutputPastWindow verifies frames past the window keep
// whatever the output block held on entry
func TestPlaybackLeavesOutputPastWindow(t *testing.T) {
	store := storeWithRamp(64)
	var play PlaybackReader
	play.SetWindow(0, 6, 1) // frames 0..3

	const marker = float32(7.25)
	out := make([]float32, 2*16)
	for i := range out {
		out[i] = marker
	}

	play.ProcessBlock(store, out, 16)

	for f := 4; f < 16; f++ {
		if out[2*f] != marker || out[2*f+1] != marker {
			t.Fatalf("Frame %d: expected marker preserved, got (%f, %f)", f, out[2*f], out[2*f+1])
		}
	}
}

// TestPlaybackCursorHaltsPastEnd verifies the cursor stops advancing once
// outside the window instead of wrapping
func TestPlaybackCursorHaltsPastEnd(t *testing.T) {
	store := storeWithRamp(64)
	var play PlaybackReader
	play.SetWindow(0, 6, 1)

	out := make([]float32, 2*16)
	play.ProcessBlock(store, out, 16)
	halted := play.Cursor()

	play.ProcessBlock(store, out, 16)
	if play.Cursor() != halted {
		t.Errorf("Expected cursor to hold at %d, got %d", halted, play.Cursor())
	}
}

// TestPlaybackZeroSpeedHoldsFrame verifies the pre-gesture state (speed 0,
// window [0,0]) repeats the first stored frame
func TestPlaybackZeroSpeedHoldsFrame(t *testing.T) {
	store := newSampleStore(make([]float32, constant.BufferLength))
	store.Write(0, 0.5, -0.5)

	var play PlaybackReader
	play.reset()

	out := make([]float32, 2*8)
	play.ProcessBlock(store, out, 8)

	for f := 0; f < 8; f++ {
		if out[2*f] != 0.5 || out[2*f+1] != -0.5 {
			t.Fatalf("Frame %d: expected held frame (0.5, -0.5), got (%f, %f)", f, out[2*f], out[2*f+1])
		}
	}
	if play.Cursor() != 0 {
		t.Errorf("Expected cursor to stay at 0 with zero speed, got %d", play.Cursor())
	}
}

// TestPlaybackClampsToBufferEnd verifies the buffer bound guards windows
// whose computed end equals BufferLength
func TestPlaybackClampsToBufferEnd(t *testing.T) {
	store := newSampleStore(make([]float32, constant.BufferLength))
	store.Write(constant.BufferLength-2, 0.9, -0.9)

	var play PlaybackReader
	// Last pad column: end lands exactly on BufferLength
	play.SetWindow(constant.BufferLength-4, constant.BufferLength, 1)

	out := make([]float32, 2*4)
	play.ProcessBlock(store, out, 4)

	if out[2] != 0.9 || out[3] != -0.9 {
		t.Errorf("Expected last stored pair on frame 1, got (%f, %f)", out[2], out[3])
	}
	// Cursor ends at BufferLength and the remaining frames stay untouched
	for f := 2; f < 4; f++ {
		if out[2*f] != 0 {
			t.Errorf("Frame %d: expected untouched output past buffer end, got %f", f, out[2*f])
		}
	}
}
