// Command padloop is a terminal demo for the pad looper: the screen is an
// XY pad driven by the mouse, a test tone is the record source, and the
// speaker plays the looper output.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/padloop/constant"
	"github.com/lixenwraith/padloop/looper"
	"github.com/lixenwraith/padloop/midi"
	"github.com/lixenwraith/padloop/stream"
)

var (
	freqFlag = flag.Float64("freq", 220, "test tone frequency in Hz")
	midiFlag = flag.String("midi", "", "MIDI input port name substring (empty = no MIDI)")
)

// App holds the demo state
type App struct {
	screen tcell.Screen
	fx     *looper.Effect
	cfg    looper.PadConfig
	tone   *stream.Tone
	bridge *midi.Bridge

	width, height int
	audioOK       bool
	midiOK        bool

	// Last pad press, for the on-screen marker
	pressX, pressY int
	pressed        bool
	mouseDown      bool
}

func NewApp() (*App, error) {
	cfg := looper.LoadPadConfig()

	fx := looper.NewEffect(cfg)
	desc := &looper.RuntimeDesc{
		APIVersion:     looper.APIVersion,
		SampleRate:     constant.AudioSampleRate,
		InputChannels:  constant.InputChannels,
		OutputChannels: constant.OutputChannels,
		Buffer:         make([]float32, constant.BufferLength),
	}
	if err := fx.Init(desc); err != nil {
		return nil, fmt.Errorf("effect init: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &App{
		screen: screen,
		fx:     fx,
		cfg:    cfg,
		tone:   stream.NewTone(constant.AudioSampleRate, *freqFlag, 0.4),
	}
	a.width, a.height = screen.Size()

	// Audio failure degrades to a silent UI
	if err := a.initAudio(); err != nil {
		a.audioOK = false
	}

	if *midiFlag != "" {
		a.bridge = midi.NewBridge(fx, cfg)
		if err := a.bridge.Connect(*midiFlag); err == nil {
			a.midiOK = true
		}
	}

	return a, nil
}

func (a *App) initAudio() error {
	rate := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(stream.NewProcessor(a.fx, a.tone, stream.DefaultBlockFrames))
	a.audioOK = true
	return nil
}

// padRect returns the on-screen pad area, leaving room for the status bar
func (a *App) padRect() (x, y, w, h int) {
	w = a.width - 2
	h = a.height - 4
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return 1, 1, w, h
}

// toPadCoords maps a terminal cell inside the pad area onto the
// configured coordinate space
func (a *App) toPadCoords(col, row int) (px, py uint32, ok bool) {
	x, y, w, h := a.padRect()
	if col < x || col >= x+w || row < y || row >= y+h {
		return 0, 0, false
	}
	px = uint32(col-x) * a.cfg.Width / uint32(w)
	py = uint32(row-y) * a.cfg.Height / uint32(h)
	return px, py, true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !a.mouseDown:
		if px, py, ok := a.toPadCoords(col, row); ok {
			a.fx.TouchEvent(0, looper.PhaseBegan, px, py)
			a.pressX, a.pressY = col, row
			a.pressed = true
		}
	case !down && a.mouseDown:
		if px, py, ok := a.toPadCoords(col, row); ok {
			a.fx.TouchEvent(0, looper.PhaseEnded, px, py)
		}
		a.pressed = false
	}
	a.mouseDown = down
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	depth := a.fx.GetParameterValue(looper.Depth)
	switch ev.Rune() {
	case 'q':
		return false
	case 'r':
		a.fx.SetParameter(looper.Depth, -500)
	case 'p':
		a.fx.SetParameter(looper.Depth, 500)
	case '[':
		a.fx.SetParameter(looper.Depth, depth-100)
	case ']':
		a.fx.SetParameter(looper.Depth, depth+100)
	case '1', '2', '3', '4':
		a.fx.SetParameter(looper.Param4, int32(ev.Rune()-'1'))
	}
	return true
}

func (a *App) drawText(col, row int, text string, style tcell.Style) {
	for i, r := range text {
		a.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (a *App) draw() {
	a.screen.Clear()

	x, y, w, h := a.padRect()
	mode := a.fx.Params().Mode()

	// Pad surface: column grid hints
	gridStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	for c := 1; c < constant.PadColumns; c++ {
		gx := x + c*w/constant.PadColumns
		for row := y; row < y+h; row++ {
			a.screen.SetContent(gx, row, '·', nil, gridStyle)
		}
	}

	// Border, colored by mode
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if mode == looper.ModeRecord {
		borderStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	for col := x - 1; col <= x+w; col++ {
		a.screen.SetContent(col, y-1, '─', nil, borderStyle)
		a.screen.SetContent(col, y+h, '─', nil, borderStyle)
	}
	for row := y; row < y+h; row++ {
		a.screen.SetContent(x-1, row, '│', nil, borderStyle)
		a.screen.SetContent(x+w, row, '│', nil, borderStyle)
	}

	// Press marker
	if a.pressed {
		a.screen.SetContent(a.pressX, a.pressY, '◆', nil,
			tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	a.drawStatus(y + h + 1)
	a.screen.Show()
}

func (a *App) drawStatus(row int) {
	style := tcell.StyleDefault

	modeName := "PLAY"
	cursor := a.fx.ReadCursor()
	if a.fx.Params().Mode() == looper.ModeRecord {
		modeName = "REC "
		cursor = a.fx.WriteCursor()
	}

	depth := a.fx.GetParameterValue(looper.Depth)
	p4 := a.fx.GetParameterValue(looper.Param4)
	p4Str := a.fx.GetParameterStrValue(looper.Param4, p4)

	progress := 0
	if cursor <= constant.BufferLength {
		progress = int(uint64(cursor) * 100 / constant.BufferLength)
	}

	audio := "audio off"
	if a.audioOK {
		audio = "audio on"
	}
	midiState := ""
	if a.midiOK {
		midiState = "  midi on"
	}

	a.drawText(1, row, fmt.Sprintf("%s depth %+5d  %s  cursor %3d%%  %s%s",
		modeName, depth, p4Str, progress, audio, midiState), style)
	a.drawText(1, row+1, "mouse: pad press  r/p: rec/play  [ ]: depth  1-4: style  q: quit", style)
}

func (a *App) run() {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				a.handleMouse(ev)
			case *tcell.EventResize:
				a.width, a.height = a.screen.Size()
				a.screen.Sync()
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

func (a *App) close() {
	if a.bridge != nil {
		a.bridge.Close()
	}
	if a.audioOK {
		speaker.Clear()
	}
	a.fx.Teardown()
	a.screen.Fini()
}

func main() {
	flag.Parse()

	app, err := NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "padloop: %v\n", err)
		os.Exit(1)
	}
	defer app.close()

	app.run()
}
