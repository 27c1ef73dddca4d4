package looper

import (
	"errors"
	"math"
)

// Mode selects which cursor algorithm a block runs
type Mode int

const (
	ModeRecord Mode = iota // depth < 0
	ModePlay               // depth >= 0
)

// TouchPhase mirrors the host touch event lifecycle. Only PhaseBegan has
// defined behavior; the remaining phases are accepted and ignored.
type TouchPhase uint8

const (
	PhaseBegan TouchPhase = iota
	PhaseMoved
	PhaseStationary
	PhaseEnded
	PhaseCancelled
)

// Parameter slot indices
const (
	Param1 uint8 = iota // linear 0..1023
	Param2              // linear 0..1023
	Depth               // bipolar -1000..1000, sign selects mode
	Param4              // enumerated 0..3
	NumParams
)

// Param4 enum values
const (
	Param4Value0 uint32 = iota
	Param4Value1
	Param4Value2
	Param4Value3
	NumParam4Values
)

// InvalidParamValue is returned by GetParameterValue for unknown slots
const InvalidParamValue = int32(math.MinInt32)

// Sentinel errors surfaced by Init
var (
	ErrMemory     = errors.New("loop buffer missing or wrong size")
	ErrSampleRate = errors.New("unsupported sample rate")
	ErrGeometry   = errors.New("unsupported channel geometry")
	ErrAPIVersion = errors.New("incompatible host API version")
)
