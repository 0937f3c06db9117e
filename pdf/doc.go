// Package pdf renders the onboarding guides with fpdf.
//
// Each guide is two A4 pages: a header panel over a three-column grid of rule
// cards, then a send instructions panel, a sample folder listing and a
// two-column checklist. Every box is derived from a fixed Geometry and every
// colour from an onboard.Palette.
//
// Drawing goes through a DrawContext that carries the cursor and style state
// of one document. Its WriteText returns the Y just below the painted block,
// so stacked blocks chain without hard-coded offsets:
//
//	y := ctx.WriteText(pdf.TextBlock{X: x, Y: top, Width: w, Style: t.Title, Color: onboard.ColorText, Text: title})
//	ctx.WriteText(pdf.TextBlock{X: x, Y: y + 1, Width: w, Style: t.Description, Color: onboard.ColorMuted, Text: desc})
//
// Generate runs the whole catalog:
//
//	catalog, _ := onboard.DefaultCatalog()
//	results, err := pdf.Generate(ctx, pdf.GenerateRequest{
//		Catalog: catalog,
//		Fonts:   map[string]pdf.FontSpec{"en": {Path: "DejaVuSans.ttf"}, ...},
//		OutDir:  "public/onboarding",
//	})
//
// Output files are written to a temporary file and renamed into place.
package pdf
