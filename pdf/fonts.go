package pdf

import (
	"errors"
	"os"

	"github.com/go-pdf/fpdf"
	"pkt.systems/onboard"
)

// FontSpec names the font of one language. Path points at a TTF file. With no
// path, Family must be a core PDF font; core fonts only cover Latin-1 and are
// meant for tests and previews.
type FontSpec struct {
	Path   string
	Family string
}

// Font is a resolved font ready to be registered with a document.
type Font struct {
	Lang   string
	Family string
	Path   string
	Data   []byte
}

// Core reports whether f is one of the built-in PDF fonts.
func (f Font) Core() bool { return len(f.Data) == 0 }

// ResolveFont loads the asset named by spec. A missing or unreadable file is
// a *onboard.MissingAssetError.
func ResolveFont(lang string, spec FontSpec) (Font, error) {
	if spec.Path == "" {
		if isCoreFont(spec.Family) {
			return Font{Lang: lang, Family: spec.Family}, nil
		}
		return Font{}, &onboard.MissingAssetError{Lang: lang}
	}
	info, err := os.Stat(spec.Path)
	if err != nil {
		return Font{}, &onboard.MissingAssetError{Lang: lang, Path: spec.Path, Err: err}
	}
	if info.IsDir() {
		return Font{}, &onboard.MissingAssetError{Lang: lang, Path: spec.Path, Err: errors.New("is a directory")}
	}
	data, err := os.ReadFile(spec.Path)
	if err != nil {
		return Font{}, &onboard.MissingAssetError{Lang: lang, Path: spec.Path, Err: err}
	}
	family := spec.Family
	if family == "" || isCoreFont(family) {
		family = "onboard_" + lang
	}
	return Font{Lang: lang, Family: family, Path: spec.Path, Data: data}, nil
}

// registerFont adds f to doc for the regular and bold styles and returns the
// family name to select. The same face serves both styles.
func registerFont(doc *fpdf.Fpdf, f Font) string {
	if f.Core() {
		return f.Family
	}
	doc.AddUTF8FontFromBytes(f.Family, "", f.Data)
	doc.AddUTF8FontFromBytes(f.Family, "B", f.Data)
	return f.Family
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Arial", "Times":
		return true
	default:
		return false
	}
}
