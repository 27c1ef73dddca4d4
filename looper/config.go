package looper

import (
	"os"
	"strconv"

	"github.com/lixenwraith/padloop/constant"
)

// PadConfig describes the coordinate space the host delivers touch events
// in. The quantization grid (8 columns, 5 rows) is fixed; the extent is
// configurable instead of assuming 1024x1024.
type PadConfig struct {
	Width  uint32
	Height uint32
}

// DefaultPadConfig returns the stock 1024x1024 pad extent
func DefaultPadConfig() PadConfig {
	return PadConfig{
		Width:  constant.DefaultPadWidth,
		Height: constant.DefaultPadHeight,
	}
}

// LoadPadConfig loads the pad extent from environment variables
func LoadPadConfig() PadConfig {
	cfg := DefaultPadConfig()

	if w := os.Getenv("PADLOOP_PAD_WIDTH"); w != "" {
		if val, err := strconv.Atoi(w); err == nil && val >= constant.PadColumns {
			cfg.Width = uint32(val)
		}
	}

	if h := os.Getenv("PADLOOP_PAD_HEIGHT"); h != "" {
		if val, err := strconv.Atoi(h); err == nil && val >= constant.PadRows {
			cfg.Height = uint32(val)
		}
	}

	return cfg
}
