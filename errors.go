package onboard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownColor reports a palette key that has no colour.
	ErrUnknownColor = errors.New("unknown palette key")
	// ErrUnknownTypography reports a typography name with no size table.
	ErrUnknownTypography = errors.New("unknown typography")
	// ErrUnknownLanguage reports a language code missing from the catalog.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrMissingAsset reports a required font file that does not exist.
	ErrMissingAsset = errors.New("missing asset")
	// ErrWrite reports a filesystem failure while installing an output file.
	ErrWrite = errors.New("write failed")
	// ErrInvalidContent reports a content table that fails validation.
	ErrInvalidContent = errors.New("invalid content")
	// ErrLayoutOverflow reports content that does not fit its panel.
	ErrLayoutOverflow = errors.New("layout overflow")
)

// ConfigError reports a style or palette lookup that cannot be resolved.
type ConfigError struct {
	Kind string
	Key  string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %q: %v", e.Kind, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// MissingAssetError reports a font asset that is not present on disk.
type MissingAssetError struct {
	Lang string
	Path string
	Err  error
}

func (e *MissingAssetError) Error() string {
	path := e.Path
	if path == "" {
		path = "(not configured)"
	}
	if e.Err != nil {
		return fmt.Sprintf("missing asset for %s: %s: %v", e.Lang, path, e.Err)
	}
	return fmt.Sprintf("missing asset for %s: %s", e.Lang, path)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *MissingAssetError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMissingAsset}
	}
	return []error{ErrMissingAsset, e.Err}
}

// WriteError reports a failed step of an atomic file replacement.
type WriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *WriteError) Unwrap() []error {
	return []error{ErrWrite, e.Err}
}

// ValidationError lists every problem found in a content table.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidContent, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidContent }

// LayoutError reports an element that ends past the box meant to hold it.
type LayoutError struct {
	Lang    string
	Element string
	Bottom  float64
	Limit   float64
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%v: %s: %s ends at %.1fmm, limit %.1fmm", ErrLayoutOverflow, e.Lang, e.Element, e.Bottom, e.Limit)
}

func (e *LayoutError) Unwrap() error { return ErrLayoutOverflow }
