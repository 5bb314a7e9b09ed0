package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Color 是 RGBA 颜色，字典形态为 "#RRGGBBAA"。
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ColorFromAny 接受 "#RRGGBB" / "#RRGGBBAA"，或 {red, green, blue, alpha} 分量（0~1 浮点）。
func ColorFromAny(v any) (Color, bool) {
	switch x := v.(type) {
	case nil:
		return Color{}, false
	case Color:
		return x, true
	case string:
		return parseHexColor(x)
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return Color{}, false
	}
	comp := func(key string, def float64) uint8 {
		f, err := cast.ToFloat64E(m[key])
		if m[key] == nil || err != nil {
			f = def
		}
		f = min(max(f, 0), 1)
		return uint8(f*255 + 0.5)
	}
	return Color{R: comp("red", 0), G: comp("green", 0), B: comp("blue", 0), A: comp("alpha", 1)}, true
}

func parseHexColor(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 6 {
		s += "FF"
	}
	if len(s) != 8 {
		return Color{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, true
}
