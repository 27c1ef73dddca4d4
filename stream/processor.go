// Package stream bridges the looper core into the beep streaming world so
// it can sit in a speaker chain like any other streamer.
package stream

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/padloop/looper"
)

// DefaultBlockFrames is the per-call frame budget handed to the effect
const DefaultBlockFrames = 64

// Processor adapts an Effect to beep.Streamer. Samples pulled from the
// source are converted to interleaved float32, run through the effect in
// fixed-size blocks, and converted back.
//
// The output block is zeroed before each Process call, so frames the
// effect leaves unwritten (record mode, playback past the window) come
// out as silence rather than stale data. This pins down the
// output-untouched gap in the core contract for speaker use.
type Processor struct {
	src beep.Streamer
	fx  *looper.Effect

	in  []float32
	out []float32
}

// NewProcessor wraps fx around src with the given block size in frames
func NewProcessor(fx *looper.Effect, src beep.Streamer, blockFrames int) *Processor {
	if blockFrames <= 0 {
		blockFrames = DefaultBlockFrames
	}
	return &Processor{
		src: src,
		fx:  fx,
		in:  make([]float32, 2*blockFrames),
		out: make([]float32, 2*blockFrames),
	}
}

// Stream implements beep.Streamer
func (p *Processor) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.src.Stream(samples)

	block := len(p.in) / 2
	for done := 0; done < n; {
		chunk := n - done
		if chunk > block {
			chunk = block
		}

		for f := 0; f < chunk; f++ {
			p.in[2*f] = float32(samples[done+f][0])
			p.in[2*f+1] = float32(samples[done+f][1])
			p.out[2*f] = 0
			p.out[2*f+1] = 0
		}

		p.fx.Process(p.in[:2*chunk], p.out[:2*chunk], chunk)

		for f := 0; f < chunk; f++ {
			samples[done+f][0] = float64(p.out[2*f])
			samples[done+f][1] = float64(p.out[2*f+1])
		}

		done += chunk
	}

	return n, ok
}

// Err implements beep.Streamer
func (p *Processor) Err() error {
	return p.src.Err()
}

// Tone is an endless stereo sine source used as demo input material
type Tone struct {
	freq  float64
	amp   float64
	phase float64
	rate  beep.SampleRate
}

// NewTone creates a sine tone at the given frequency and amplitude
func NewTone(rate beep.SampleRate, freq, amp float64) *Tone {
	return &Tone{
		freq: freq,
		amp:  amp,
		rate: rate,
	}
}

// SetFreq retunes the tone. Not safe to call while streaming; the demo
// only retunes between speaker locks.
func (t *Tone) SetFreq(freq float64) {
	t.freq = freq
}

// Stream implements beep.Streamer
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := t.amp * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase = t.phase - math.Floor(t.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (t *Tone) Err() error { return nil }
