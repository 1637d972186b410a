package cursor

import (
	"fmt"
	"math"
)

// Color reads three (or four, if needAlpha) consecutive little-endian
// float32 color channels at the current position and formats them as an
// uppercase hex string, channel = round(value * 255).
//
// Channel order is RGB, or RGBA when needAlpha is true; a needAlpha=false
// read emits only 6 hex digits (no alpha channel at all).
func (c *Cursor) Color(needAlpha bool) (string, error) {
	r, err := c.Float32()
	if err != nil {
		return "", err
	}
	g, err := c.Float32()
	if err != nil {
		return "", err
	}
	b, err := c.Float32()
	if err != nil {
		return "", err
	}

	if !needAlpha {
		return fmt.Sprintf("%02X%02X%02X", colorByte(r.Float64()), colorByte(g.Float64()), colorByte(b.Float64())), nil
	}

	a, err := c.Float32()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%02X%02X%02X%02X",
		colorByte(r.Float64()), colorByte(g.Float64()), colorByte(b.Float64()), colorByte(a.Float64())), nil
}

func colorByte(channel float64) int64 {
	v := int64(math.Round(channel * 255))

	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return v
}
