package onboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ColorKey names a semantic colour of the layout.
type ColorKey string

// Semantic palette keys referenced by the page composer.
const (
	ColorBackground ColorKey = "background"
	ColorPanel      ColorKey = "panel"
	ColorCard       ColorKey = "card"
	ColorBorder     ColorKey = "border"
	ColorAccent     ColorKey = "accent"
	ColorHighlight  ColorKey = "highlight"
	ColorText       ColorKey = "text"
	ColorMuted      ColorKey = "muted"
)

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B int
}

// Palette maps semantic keys to colours.
type Palette map[ColorKey]RGB

// RGBOf resolves key, failing with a *ConfigError when the palette has no entry.
func (p Palette) RGBOf(key ColorKey) (RGB, error) {
	c, ok := p[key]
	if !ok {
		return RGB{}, &ConfigError{Kind: "color", Key: string(key), Err: ErrUnknownColor}
	}
	return c, nil
}

// Keys returns the palette keys in sorted order.
func (p Palette) Keys() []ColorKey {
	keys := make([]ColorKey, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DefaultPalette returns the dark onboarding palette.
func DefaultPalette() Palette {
	return Palette{
		ColorBackground: mustHex("#090b10"),
		ColorPanel:      mustHex("#0f1218"),
		ColorCard:       mustHex("#111723"),
		ColorBorder:     mustHex("#2a3342"),
		ColorAccent:     mustHex("#66d9cb"),
		ColorHighlight:  mustHex("#f6ba4f"),
		ColorText:       mustHex("#f5f1e9"),
		ColorMuted:      mustHex("#cbc5bb"),
	}
}

// ParseHex parses a "#rrggbb" colour.
func ParseHex(s string) (RGB, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return RGB{}, fmt.Errorf("parse color %q: expected #rrggbb", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB{R: int(n >> 16 & 0xff), G: int(n >> 8 & 0xff), B: int(n & 0xff)}, nil
}

func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
