package constant

// Sample Buffer Geometry
const (
	// BufferLength is the capacity of the loop buffer in interleaved
	// float32 slots. Stereo, so BufferLength/2 frames.
	BufferLength = 0x40000

	// BufferFrames is the stereo frame capacity
	BufferFrames = BufferLength / 2
)

// Host Audio Format
const (
	AudioSampleRate = 48000
	InputChannels   = 2
	OutputChannels  = 2
)

// Pad Coordinate Space
const (
	// DefaultPadWidth/Height assume the host delivers touch coordinates
	// in a 1024x1024 domain unless configured otherwise
	DefaultPadWidth  = 1024
	DefaultPadHeight = 1024

	// PadColumns splits the horizontal axis into playback windows
	PadColumns = 8

	// PadRows splits the vertical axis into replay speed steps
	PadRows = 5
)

// Parameter Ranges
const (
	// Param10BitMax is the raw ceiling of the two linear controls
	Param10BitMax = 1023

	// DepthRawMax bounds the bipolar depth control (-DepthRawMax..DepthRawMax)
	DepthRawMax = 1000
)

// GestureQueueDepth bounds pending pad gestures between control and audio
// contexts. Excess gestures are dropped, never blocked on.
const GestureQueueDepth = 16
