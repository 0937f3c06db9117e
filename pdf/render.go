package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
	"pkt.systems/onboard"
)

const producer = "pkt.systems/onboard"

// RenderRequest contains inputs for rendering one guide.
type RenderRequest struct {
	Writer  io.Writer
	Content onboard.ContentSet
	// Contact is the intake line printed on page two.
	Contact string
	Font    Font
	Config  Config
	Logger  *zap.Logger
}

// Render paints the two-page guide for req.Content and writes the PDF.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	if req.Font.Family == "" {
		return fmt.Errorf("pdf render: %s: font family is empty", req.Content.Lang)
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	typo, err := cfg.TypographyFor(req.Content.Typography)
	if err != nil {
		return fmt.Errorf("pdf render: %s: %w", req.Content.Lang, err)
	}
	g := cfg.Geometry

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: g.PageW, Ht: g.PageH},
	})
	doc.SetMargins(g.Margin, g.Margin, g.Margin)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	doc.SetCreationDate(cfg.CreationDate)
	doc.SetModificationDate(cfg.CreationDate)
	doc.SetCompression(!cfg.Uncompressed)
	doc.SetProducer(producer, false)
	doc.SetTitle(req.Content.Title, true)
	doc.SetSubject(req.Content.Tag, true)

	family := registerFont(doc, req.Font)
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: %s: font setup failed: %w", req.Content.Lang, err)
	}

	ctx := NewDrawContext(doc, DrawOptions{
		Palette: cfg.Palette,
		Family:  family,
		Lang:    req.Content.Lang,
		Strict:  cfg.Strict,
		Logger:  req.Logger,
	})
	if err := Compose(ctx, req.Content, req.Contact, g, typo); err != nil {
		return fmt.Errorf("pdf render: %s: %w", req.Content.Lang, err)
	}
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: %s: %w", req.Content.Lang, err)
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: %s: output: %w", req.Content.Lang, err)
	}
	return nil
}
