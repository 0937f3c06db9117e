package pdf

import (
	"time"

	"pkt.systems/onboard"
)

// TextStyle is a font size in points and a line advance in millimetres.
type TextStyle struct {
	Size    float64
	Leading float64
	Bold    bool
}

// Typography holds the text styles of every role on the two pages.
type Typography struct {
	Tag         TextStyle
	Title       TextStyle
	Description TextStyle
	Heading     TextStyle
	Subtitle    TextStyle
	CardTitle   TextStyle
	CardBody    TextStyle
	Step        TextStyle
	Contact     TextStyle
	Listing     TextStyle
	CheckItem   TextStyle
	Footer      TextStyle
}

// StandardTypography is used for Latin and Cyrillic guides.
func StandardTypography() Typography {
	return Typography{
		Tag:         TextStyle{Size: 9, Leading: 4.2, Bold: true},
		Title:       TextStyle{Size: 20, Leading: 8.0, Bold: true},
		Description: TextStyle{Size: 10, Leading: 5.0},
		Heading:     TextStyle{Size: 11, Leading: 5.0, Bold: true},
		Subtitle:    TextStyle{Size: 9, Leading: 4.5},
		CardTitle:   TextStyle{Size: 10, Leading: 4.3, Bold: true},
		CardBody:    TextStyle{Size: 8, Leading: 3.9},
		Step:        TextStyle{Size: 10, Leading: 4.8},
		Contact:     TextStyle{Size: 8, Leading: 4.2, Bold: true},
		Listing:     TextStyle{Size: 8, Leading: 4.6},
		CheckItem:   TextStyle{Size: 8, Leading: 4.0},
		Footer:      TextStyle{Size: 9, Leading: 4.6},
	}
}

// CompactTypography shrinks body text by one point for dense scripts.
func CompactTypography() Typography {
	t := StandardTypography()
	t.Title.Size = 18
	t.Description.Size = 9
	t.CardTitle.Size = 9
	t.CardBody.Size = 7
	t.Step.Size = 9
	t.Listing.Size = 7
	t.CheckItem.Size = 7
	t.Footer.Size = 8
	return t
}

// Config holds PDF rendering settings.
type Config struct {
	Geometry     Geometry
	Palette      onboard.Palette
	Typography   map[string]Typography
	CreationDate time.Time
	// Uncompressed writes plain content streams, which is easier to diff.
	Uncompressed bool
	// Strict turns text that spills out of its box into an error instead of
	// a logged warning.
	Strict bool
}

// DefaultCreationDate is stamped into every document so that renders of the
// same content are byte-identical.
var DefaultCreationDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		Geometry: DefaultGeometry(),
		Palette:  onboard.DefaultPalette(),
		Typography: map[string]Typography{
			onboard.TypographyStandard: StandardTypography(),
			onboard.TypographyCompact:  CompactTypography(),
		},
		CreationDate: DefaultCreationDate,
	}
}

// TypographyFor resolves a typography name; empty means standard.
func (c Config) TypographyFor(name string) (Typography, error) {
	if name == "" {
		name = onboard.TypographyStandard
	}
	t, ok := c.Typography[name]
	if !ok {
		return Typography{}, &onboard.ConfigError{Kind: "typography", Key: name, Err: onboard.ErrUnknownTypography}
	}
	return t, nil
}

func applyConfig(dst *Config, src Config) {
	if src.Geometry != (Geometry{}) {
		dst.Geometry = src.Geometry
	}
	if len(src.Palette) > 0 {
		dst.Palette = src.Palette
	}
	if len(src.Typography) > 0 {
		dst.Typography = src.Typography
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
	if src.Uncompressed {
		dst.Uncompressed = src.Uncompressed
	}
	if src.Strict {
		dst.Strict = src.Strict
	}
}
