package onboard

import (
	"errors"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	cases := map[ColorKey]RGB{
		ColorBackground: {9, 11, 16},
		ColorAccent:     {102, 217, 203},
		ColorHighlight:  {246, 186, 79},
		ColorText:       {245, 241, 233},
	}
	for key, want := range cases {
		got, err := p.RGBOf(key)
		if err != nil {
			t.Fatalf("RGBOf(%s): %v", key, err)
		}
		if got != want {
			t.Fatalf("RGBOf(%s) = %v, want %v", key, got, want)
		}
	}
	if len(p.Keys()) != 8 {
		t.Fatalf("expected 8 palette keys, got %v", p.Keys())
	}
}

func TestRGBOfUnknownKey(t *testing.T) {
	_, err := DefaultPalette().RGBOf("ultraviolet")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Kind != "color" || cfgErr.Key != "ultraviolet" || !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("unexpected error %v", cfgErr)
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex(" #2A3342 ")
	if err != nil || got != (RGB{42, 51, 66}) {
		t.Fatalf("ParseHex = %v, %v", got, err)
	}
	for _, bad := range []string{"", "#fff", "#gggggg", "#12345678"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q) accepted", bad)
		}
	}
}
