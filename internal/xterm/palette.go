// ABOUTME: 256-color palette used to answer OSC 4 color queries
// ABOUTME: xterm defaults with per-index overrides parsed from "#rrggbb" strings

package xterm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mauromedda/rio-go/pkg/event"
)

var ansi16 = [16]event.RGB{
	{R: 0x00, G: 0x00, B: 0x00}, {R: 0xcd, G: 0x00, B: 0x00}, {R: 0x00, G: 0xcd, B: 0x00}, {R: 0xcd, G: 0xcd, B: 0x00},
	{R: 0x00, G: 0x00, B: 0xee}, {R: 0xcd, G: 0x00, B: 0xcd}, {R: 0x00, G: 0xcd, B: 0xcd}, {R: 0xe5, G: 0xe5, B: 0xe5},
	{R: 0x7f, G: 0x7f, B: 0x7f}, {R: 0xff, G: 0x00, B: 0x00}, {R: 0x00, G: 0xff, B: 0x00}, {R: 0xff, G: 0xff, B: 0x00},
	{R: 0x5c, G: 0x5c, B: 0xff}, {R: 0xff, G: 0x00, B: 0xff}, {R: 0x00, G: 0xff, B: 0xff}, {R: 0xff, G: 0xff, B: 0xff},
}

// Palette maps color indexes to RGB values.
type Palette struct {
	overrides map[int]event.RGB
}

// NewPalette builds a palette from "#rrggbb" overrides keyed by index.
func NewPalette(overrides map[int]string) (*Palette, error) {
	p := &Palette{overrides: make(map[int]event.RGB, len(overrides))}
	for idx, hex := range overrides {
		if idx < 0 || idx > 255 {
			return nil, fmt.Errorf("palette index %d out of range", idx)
		}
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette index %d: %w", idx, err)
		}
		p.overrides[idx] = c
	}
	return p, nil
}

// Color returns the color at index; out-of-range indexes yield false.
func (p *Palette) Color(index int) (event.RGB, bool) {
	if index < 0 || index > 255 {
		return event.RGB{}, false
	}
	if p != nil {
		if c, ok := p.overrides[index]; ok {
			return c, true
		}
	}
	return defaultColor(index), true
}

func defaultColor(index int) event.RGB {
	switch {
	case index < 16:
		return ansi16[index]
	case index < 232:
		i := index - 16
		level := func(v int) uint8 {
			if v == 0 {
				return 0
			}
			return uint8(55 + v*40)
		}
		return event.RGB{R: level(i / 36), G: level((i / 6) % 6), B: level(i % 6)}
	default:
		v := uint8(8 + (index-232)*10)
		return event.RGB{R: v, G: v, B: v}
	}
}

// ParseColor parses "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (event.RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return event.RGB{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return event.RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return event.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
