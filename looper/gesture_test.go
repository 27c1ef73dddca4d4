package looper

import (
	"testing"

	"github.com/lixenwraith/padloop/constant"
)

// TestGestureRecordPress verifies a press in record mode maps to a
// record-start command
func TestGestureRecordPress(t *testing.T) {
	mapper := NewGestureMapper(DefaultPadConfig())

	cmd, ok := mapper.Map(ModeRecord, PhaseBegan, 500, 500)
	if !ok {
		t.Fatal("Expected a command for PhaseBegan in record mode")
	}
	if cmd.kind != cmdStartRecord {
		t.Errorf("Expected cmdStartRecord, got kind %d", cmd.kind)
	}
}

// TestGestureIgnoresOtherPhases verifies moved/stationary/ended/cancelled
// produce no command in either mode
func TestGestureIgnoresOtherPhases(t *testing.T) {
	mapper := NewGestureMapper(DefaultPadConfig())
	phases := []TouchPhase{PhaseMoved, PhaseStationary, PhaseEnded, PhaseCancelled}

	for _, phase := range phases {
		if _, ok := mapper.Map(ModeRecord, phase, 0, 0); ok {
			t.Errorf("Expected no command for phase %d in record mode", phase)
		}
		if _, ok := mapper.Map(ModePlay, phase, 0, 0); ok {
			t.Errorf("Expected no command for phase %d in play mode", phase)
		}
	}
}

// TestGestureOriginCell verifies x=0,y=0 yields the first window at
// normal speed
func TestGestureOriginCell(t *testing.T) {
	mapper := NewGestureMapper(DefaultPadConfig())

	cmd, ok := mapper.Map(ModePlay, PhaseBegan, 0, 0)
	if !ok {
		t.Fatal("Expected a command for PhaseBegan in play mode")
	}
	if cmd.kind != cmdSetWindow {
		t.Fatalf("Expected cmdSetWindow, got kind %d", cmd.kind)
	}
	if cmd.start != 0 {
		t.Errorf("Expected window start 0, got %d", cmd.start)
	}
	if cmd.end != constant.BufferLength/8 {
		t.Errorf("Expected window end %d, got %d", constant.BufferLength/8, cmd.end)
	}
	if cmd.speed != 1 {
		t.Errorf("Expected speed 1, got %f", cmd.speed)
	}
}

// TestGestureFarCornerCell verifies x=1023,y=1023 yields the last window
// and the top speed
func TestGestureFarCornerCell(t *testing.T) {
	mapper := NewGestureMapper(DefaultPadConfig())

	cmd, ok := mapper.Map(ModePlay, PhaseBegan, 1023, 1023)
	if !ok {
		t.Fatal("Expected a command for PhaseBegan in play mode")
	}
	wantStart := uint32(constant.BufferLength) * 7 / 8
	if cmd.start != wantStart {
		t.Errorf("Expected window start %d, got %d", wantStart, cmd.start)
	}
	if cmd.end != constant.BufferLength {
		t.Errorf("Expected window end %d, got %d", constant.BufferLength, cmd.end)
	}
	if cmd.speed != constant.PadRows {
		t.Errorf("Expected speed %d, got %f", constant.PadRows, cmd.speed)
	}
}

// TestGestureColumnMatchesShiftQuantization verifies the derived column
// rule agrees with a plain x>>7 on the stock 1024-wide pad
func TestGestureColumnMatchesShiftQuantization(t *testing.T) {
	mapper := NewGestureMapper(DefaultPadConfig())

	for x := uint32(0); x < 1024; x += 17 {
		if got, want := mapper.column(x), x>>7; got != want {
			t.Fatalf("x=%d: expected column %d, got %d", x, want, got)
		}
	}
}

// TestGestureCustomExtent verifies quantization follows a configured pad
// size instead of the stock 1024x1024
func TestGestureCustomExtent(t *testing.T) {
	mapper := NewGestureMapper(PadConfig{Width: 640, Height: 480})

	// Rightmost and bottom edge still land in the last cells
	cmd, ok := mapper.Map(ModePlay, PhaseBegan, 639, 479)
	if !ok {
		t.Fatal("Expected a command")
	}
	if cmd.start != uint32(constant.BufferLength)*7/8 {
		t.Errorf("Expected last column window start, got %d", cmd.start)
	}
	if cmd.speed != constant.PadRows {
		t.Errorf("Expected top speed %d, got %f", constant.PadRows, cmd.speed)
	}

	// Midpoint lands mid-grid
	cmd, _ = mapper.Map(ModePlay, PhaseBegan, 320, 240)
	if cmd.start != uint32(constant.BufferLength)*4/8 {
		t.Errorf("Expected column 4 window start, got %d", cmd.start)
	}
	if cmd.speed != 3 {
		t.Errorf("Expected speed 3 at vertical midpoint, got %f", cmd.speed)
	}
}

// TestGestureClampsOutOfRangeCoordinates verifies coordinates past the
// configured extent clamp to the last cells
func TestGestureClampsOutOfRangeCoordinates(t *testing.T) {
	mapper := NewGestureMapper(DefaultPadConfig())

	cmd, _ := mapper.Map(ModePlay, PhaseBegan, 5000, 5000)
	if cmd.start != uint32(constant.BufferLength)*7/8 {
		t.Errorf("Expected clamp to last column, got start %d", cmd.start)
	}
	if cmd.speed != constant.PadRows {
		t.Errorf("Expected clamp to top speed, got %f", cmd.speed)
	}
}
