package looper

import "github.com/lixenwraith/padloop/constant"

// cursorCommand is the unit of communication from the control context to
// the audio context. The audio context applies commands at the start of
// the next block, so every cursor field has exactly one writer.
type cursorCommand struct {
	kind  commandKind
	start uint32
	end   uint32
	speed float32
}

type commandKind uint8

const (
	cmdStartRecord commandKind = iota
	cmdSetWindow
)

// GestureMapper quantizes pad press coordinates into cursor commands.
// In record mode a press rewinds the write cursor; in play mode the
// horizontal cell picks a playback window and the vertical cell a speed.
type GestureMapper struct {
	cfg PadConfig
}

// NewGestureMapper creates a mapper over the given pad extent
func NewGestureMapper(cfg PadConfig) GestureMapper {
	return GestureMapper{cfg: cfg}
}

// Map converts a touch event into a cursor command. Only PhaseBegan
// produces a command; every other phase returns ok=false.
func (g *GestureMapper) Map(mode Mode, phase TouchPhase, x, y uint32) (cmd cursorCommand, ok bool) {
	if phase != PhaseBegan {
		return cursorCommand{}, false
	}

	if mode == ModeRecord {
		return cursorCommand{kind: cmdStartRecord}, true
	}

	col := g.column(x)
	start := uint32(uint64(constant.BufferLength) * uint64(col) / constant.PadColumns)
	end := uint32(uint64(constant.BufferLength) * uint64(col+1) / constant.PadColumns)

	// Baseline speed 1 plus the vertical cell, range 1..PadRows
	speed := float32(1 + g.row(y))

	return cursorCommand{
		kind:  cmdSetWindow,
		start: start,
		end:   end,
		speed: speed,
	}, true
}

// column quantizes x into one of PadColumns cells. For the default
// 1024-wide extent this reduces to x>>7.
func (g *GestureMapper) column(x uint32) uint32 {
	col := uint32(uint64(x) * constant.PadColumns / uint64(g.cfg.Width))
	if col > constant.PadColumns-1 {
		col = constant.PadColumns - 1
	}
	return col
}

// row quantizes y into one of PadRows cells, derived from the configured
// extent so every advertised speed step is reachable.
func (g *GestureMapper) row(y uint32) uint32 {
	row := uint32(uint64(y) * constant.PadRows / uint64(g.cfg.Height))
	if row > constant.PadRows-1 {
		row = constant.PadRows - 1
	}
	return row
}
