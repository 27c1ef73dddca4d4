package looper

import (
	"sync/atomic"

	"github.com/lixenwraith/padloop/constant"
)

// APIVersion is the host contract this core was built against. Hosts with
// a different major version are rejected at Init.
const APIVersion uint32 = 0x01_00_00

// RuntimeDesc describes the host environment offered to the effect at
// Init. The loop buffer is caller-injected: the core never allocates, and
// the host reclaims the memory after Teardown.
type RuntimeDesc struct {
	APIVersion     uint32
	SampleRate     uint32
	InputChannels  int
	OutputChannels int

	// Buffer must hold exactly constant.BufferLength float32 slots
	Buffer []float32
}

// Effect is the fixed-latency pad looper. One contiguous stereo sample
// buffer is either recorded into or played back from, selected by the
// depth parameter sign, with the playback window and replay speed driven
// by pad press gestures.
//
// Process runs on the real-time audio context; SetParameter and
// TouchEvent run on the control context. The two communicate only through
// per-slot parameter atomics and the gesture command queue.
type Effect struct {
	store  *SampleStore
	rec    RecordWriter
	play   PlaybackReader
	mapper GestureMapper
	params Params

	gestures chan cursorCommand
	active   atomic.Bool
}

// NewEffect creates an inactive effect over the given pad extent.
// Init must succeed before Process does anything.
func NewEffect(cfg PadConfig) *Effect {
	e := &Effect{
		mapper:   NewGestureMapper(cfg),
		gestures: make(chan cursorCommand, constant.GestureQueueDepth),
	}
	e.rec.reset()
	e.params.reset()
	return e
}

// Init validates the host description, takes ownership of the loop buffer
// and clears it. Any failure leaves the effect inactive.
func (e *Effect) Init(desc *RuntimeDesc) error {
	if desc == nil {
		return ErrMemory
	}
	if desc.APIVersion>>16 != APIVersion>>16 {
		return ErrAPIVersion
	}
	if desc.SampleRate != constant.AudioSampleRate {
		return ErrSampleRate
	}
	if desc.InputChannels != constant.InputChannels || desc.OutputChannels != constant.OutputChannels {
		return ErrGeometry
	}
	if len(desc.Buffer) != constant.BufferLength {
		return ErrMemory
	}

	e.store = newSampleStore(desc.Buffer)
	e.store.Clear()

	e.rec.reset()
	e.play.reset()
	e.params.reset()

	e.active.Store(true)
	return nil
}

// Teardown deactivates the effect and releases the buffer reference. The
// host owns the memory, so no clearing is required here.
func (e *Effect) Teardown() {
	e.active.Store(false)
	e.store = nil
}

// Reset clears transient cursor state, keeping exposed parameter values
func (e *Effect) Reset() {
	e.drainGestures()
	e.rec.reset()
	e.play.reset()
}

// Resume is called when the effect is reselected and rendering restarts.
// The loop buffer is deliberately kept; a host wanting a clean slate must
// Reset explicitly.
func (e *Effect) Resume() {}

// Suspend is called when another effect is selected and rendering stops
func (e *Effect) Suspend() {}

// Process renders one audio block. in and out are interleaved stereo and
// must each hold at least 2*frames float32 slots. Record mode consumes
// input and leaves the output block untouched; play mode writes stored
// samples, leaving frames past the window end untouched. Never allocates
// and never blocks.
func (e *Effect) Process(in, out []float32, frames int) {
	if !e.active.Load() {
		return
	}

	e.drainGestures()

	if e.params.Mode() == ModeRecord {
		e.rec.ProcessBlock(e.store, in, frames)
	} else {
		e.play.ProcessBlock(e.store, out, frames)
	}
}

// drainGestures applies pending cursor commands. Runs on the audio
// context so the cursors keep a single writer.
func (e *Effect) drainGestures() {
	for {
		select {
		case cmd := <-e.gestures:
			switch cmd.kind {
			case cmdStartRecord:
				e.rec.Start()
			case cmdSetWindow:
				e.play.SetWindow(cmd.start, cmd.end, cmd.speed)
			}
		default:
			return
		}
	}
}

// TouchEvent feeds a pad touch from the control context. Only PhaseBegan
// has defined behavior; other phases are reserved extension points. The
// id slot identifies the touch for hosts with multi-touch surfaces and is
// currently unused.
func (e *Effect) TouchEvent(id uint8, phase TouchPhase, x, y uint32) {
	_ = id

	cmd, ok := e.mapper.Map(e.params.Mode(), phase, x, y)
	if !ok {
		return
	}

	// Drop rather than block when the audio context falls behind
	select {
	case e.gestures <- cmd:
	default:
	}
}

// SetParameter applies a raw host value to a parameter slot, clipping
// out-of-range values. Unknown indices are a no-op.
func (e *Effect) SetParameter(index uint8, value int32) {
	e.params.set(index, value)
}

// GetParameterValue returns the raw host value of a slot, or
// InvalidParamValue for an unknown index.
func (e *Effect) GetParameterValue(index uint8) int32 {
	return e.params.get(index)
}

// GetParameterStrValue returns the display string for an enumerated slot
// value, or "" when none exists.
func (e *Effect) GetParameterStrValue(index uint8, value int32) string {
	return e.params.strValue(index, value)
}

// SetTempo receives the host tempo as 16.16 fixed-point BPM. Reserved.
func (e *Effect) SetTempo(tempo uint32) {
	_ = tempo
}

// Tempo4ppqnTick receives the host 4ppqn clock counter. Reserved.
func (e *Effect) Tempo4ppqnTick(counter uint32) {
	_ = counter
}

// Params exposes the parameter slots for read-side collaborators
func (e *Effect) Params() *Params {
	return &e.params
}

// WriteCursor reports the record cursor, for display surfaces. Reads a
// value the audio context owns, so treat it as advisory.
func (e *Effect) WriteCursor() uint32 {
	return e.rec.Cursor()
}

// ReadCursor reports the playback cursor, for display surfaces. Advisory,
// same as WriteCursor.
func (e *Effect) ReadCursor() uint32 {
	return e.play.Cursor()
}
