package looper

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/padloop/constant"
)

// Params holds the four user-facing controls. Each slot is an independent
// atomic so the control context can write while the audio context reads
// without a lock. Only SetParameter mutates them; the audio path never
// writes a parameter.
type Params struct {
	param1 atomic.Uint32 // float32 bits, 0.0..1.0
	param2 atomic.Uint32 // float32 bits, 0.0..1.0
	depth  atomic.Int32  // raw -1000..1000
	param4 atomic.Uint32 // enum 0..3
}

// reset restores documented defaults: both linear controls zero, depth
// zero (play mode), param4 value 1.
func (p *Params) reset() {
	p.param1.Store(math.Float32bits(0))
	p.param2.Store(math.Float32bits(0))
	p.depth.Store(0)
	p.param4.Store(Param4Value1)
}

// Param1 returns the first linear control as 0.0..1.0
func (p *Params) Param1() float32 {
	return math.Float32frombits(p.param1.Load())
}

// Param2 returns the second linear control as 0.0..1.0
func (p *Params) Param2() float32 {
	return math.Float32frombits(p.param2.Load())
}

// DepthValue returns the bipolar depth control as -1.0..1.0
func (p *Params) DepthValue() float32 {
	return float32(p.depth.Load()) / constant.DepthRawMax
}

// Param4Value returns the enumerated selector index
func (p *Params) Param4Value() uint32 {
	return p.param4.Load()
}

// Mode derives the block routing from the depth sign
func (p *Params) Mode() Mode {
	if p.depth.Load() < 0 {
		return ModeRecord
	}
	return ModePlay
}

// set applies a raw host value to a slot, clipping out-of-range values
// rather than rejecting them. Unknown indices are ignored.
func (p *Params) set(index uint8, value int32) {
	switch index {
	case Param1:
		value = clipInt32(0, value, constant.Param10BitMax)
		p.param1.Store(math.Float32bits(param10BitToF32(value)))

	case Param2:
		value = clipInt32(0, value, constant.Param10BitMax)
		p.param2.Store(math.Float32bits(param10BitToF32(value)))

	case Depth:
		value = clipInt32(-constant.DepthRawMax, value, constant.DepthRawMax)
		p.depth.Store(value)

	case Param4:
		value = clipInt32(int32(Param4Value0), value, int32(NumParam4Values)-1)
		p.param4.Store(uint32(value))
	}
}

// get returns the raw host value for a slot, or InvalidParamValue for an
// unknown index.
func (p *Params) get(index uint8) int32 {
	switch index {
	case Param1:
		return paramF32To10Bit(p.Param1())
	case Param2:
		return paramF32To10Bit(p.Param2())
	case Depth:
		return p.depth.Load()
	case Param4:
		return int32(p.param4.Load())
	}
	return InvalidParamValue
}

var param4Strings = [NumParam4Values]string{
	"VAL 0",
	"VAL 1",
	"VAL 2",
	"VAL 3",
}

// strValue returns the display string for an enumerated slot value, or ""
// when the slot or value has no string form.
func (p *Params) strValue(index uint8, value int32) string {
	if index == Param4 && value >= int32(Param4Value0) && value < int32(NumParam4Values) {
		return param4Strings[value]
	}
	return ""
}

// param10BitToF32 maps raw 0..1023 to 0.0..1.0
func param10BitToF32(v int32) float32 {
	return float32(v) / constant.Param10BitMax
}

// paramF32To10Bit maps 0.0..1.0 back to raw 0..1023, rounding to nearest
func paramF32To10Bit(v float32) int32 {
	return int32(v*constant.Param10BitMax + 0.5)
}

func clipInt32(lo, v, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
