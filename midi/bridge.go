// Package midi feeds external MIDI controllers into the looper: control
// changes drive the parameter slots and note-on events land as pad
// presses in the configured coordinate space.
package midi

import (
	"errors"
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"github.com/lixenwraith/padloop/constant"
	"github.com/lixenwraith/padloop/looper"
)

// Control change numbers assigned to the parameter slots. 20-23 sit in
// the undefined general-purpose CC range.
const (
	CCParam1 uint8 = 20
	CCParam2 uint8 = 21
	CCDepth  uint8 = 22
	CCParam4 uint8 = 23
)

// ErrNoPort is returned when no MIDI input matches the requested name
var ErrNoPort = errors.New("no matching MIDI input port")

// Bridge routes MIDI input into an Effect. All callbacks run on the MIDI
// driver goroutine, which is a control context as far as the core is
// concerned.
type Bridge struct {
	fx   *looper.Effect
	cfg  looper.PadConfig
	stop func()
}

// NewBridge creates a disconnected bridge for fx
func NewBridge(fx *looper.Effect, cfg looper.PadConfig) *Bridge {
	return &Bridge{
		fx:  fx,
		cfg: cfg,
	}
}

// Connect opens the first input port whose name contains name
// (case-insensitive; empty matches the first port) and starts listening.
func (b *Bridge) Connect(name string) error {
	in, err := findInPort(name)
	if err != nil {
		return err
	}

	stop, err := gomidi.ListenTo(in, b.handle)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	b.stop = stop
	return nil
}

// Close stops listening. Safe to call when never connected.
func (b *Bridge) Close() error {
	if b.stop != nil {
		b.stop()
		b.stop = nil
	}
	return nil
}

func (b *Bridge) handle(msg gomidi.Message, timestampms int32) {
	var channel, cc, value, note, velocity uint8

	switch {
	case msg.GetControlChange(&channel, &cc, &value):
		if index, raw, ok := mapControlChange(cc, value); ok {
			b.fx.SetParameter(index, raw)
		}

	case msg.GetNoteOn(&channel, &note, &velocity) && velocity > 0:
		x, y := noteToPad(note, velocity, b.cfg)
		b.fx.TouchEvent(channel, looper.PhaseBegan, x, y)

	case msg.GetNoteOff(&channel, &note, &velocity):
		// Ended is a reserved phase in the core; forwarded for symmetry
		x, y := noteToPad(note, velocity, b.cfg)
		b.fx.TouchEvent(channel, looper.PhaseEnded, x, y)
	}
}

// mapControlChange translates a CC message into a parameter slot and raw
// host value. The 7-bit controller range is stretched onto each slot's
// documented range; the core clips anything that lands outside.
func mapControlChange(cc, value uint8) (index uint8, raw int32, ok bool) {
	switch cc {
	case CCParam1:
		return looper.Param1, int32(value) * constant.Param10BitMax / 127, true
	case CCParam2:
		return looper.Param2, int32(value) * constant.Param10BitMax / 127, true
	case CCDepth:
		// Center detent at 64: below records, at or above plays
		return looper.Depth, (int32(value) - 64) * constant.DepthRawMax / 63, true
	case CCParam4:
		return looper.Param4, int32(value) * (int32(looper.NumParam4Values) - 1) / 127, true
	}
	return 0, 0, false
}

// noteToPad spreads the 7-bit note and velocity ranges across the
// configured pad extent: note picks the column, velocity the row
func noteToPad(note, velocity uint8, cfg looper.PadConfig) (x, y uint32) {
	x = uint32(note) * cfg.Width / 128
	y = uint32(velocity) * cfg.Height / 128
	return x, y
}

func findInPort(name string) (drivers.In, error) {
	ports := gomidi.GetInPorts()
	if len(ports) == 0 {
		return nil, ErrNoPort
	}
	if name == "" {
		return ports[0], nil
	}

	want := strings.ToLower(name)
	for _, port := range ports {
		if strings.Contains(strings.ToLower(port.String()), want) {
			return port, nil
		}
	}
	return nil, ErrNoPort
}
