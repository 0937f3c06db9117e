package pdf

import (
	"go.uber.org/zap"
	"pkt.systems/onboard"
)

// Surface is the subset of the fpdf API the composer paints with.
// *fpdf.Fpdf satisfies it.
type Surface interface {
	AddPage()
	SetFont(familyStr, styleStr string, size float64)
	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	Rect(x, y, w, h float64, styleStr string)
	SetXY(x, y float64)
	CellFormat(w, h float64, txtStr, borderStr string, ln int, alignStr string, fill bool, link int, linkStr string)
	GetStringWidth(s string) float64
	GetCellMargin() float64
}

// FontState is the font last selected on the surface.
type FontState struct {
	Family string
	Style  string
	Size   float64
}

// DrawOptions configures a DrawContext.
type DrawOptions struct {
	Palette onboard.Palette
	// Family is the font family used when a TextBlock names none.
	Family string
	Lang   string
	Strict bool
	Logger *zap.Logger
}

// DrawContext carries the cursor and style state of one document through the
// sequence of paint calls. The first error is latched and every later call
// becomes a no-op, so callers check Err once at the end.
type DrawContext struct {
	surface Surface
	opts    DrawOptions
	logger  *zap.Logger

	X, Y  float64
	Font  FontState
	Color onboard.ColorKey
	Pages int

	overflows []*onboard.LayoutError
	err       error
}

// NewDrawContext wraps surface.
func NewDrawContext(surface Surface, opts DrawOptions) *DrawContext {
	if opts.Palette == nil {
		opts.Palette = onboard.DefaultPalette()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DrawContext{surface: surface, opts: opts, logger: logger}
}

// TextBlock describes one wrapped run of text.
type TextBlock struct {
	X, Y  float64
	Width float64
	Style TextStyle
	// Family overrides the default font family.
	Family string
	Color  onboard.ColorKey
	Text   string
	// Limit is the lowest Y the block may reach; zero disables the check.
	Limit   float64
	Element string
}

// Err returns the first error recorded by the context.
func (c *DrawContext) Err() error {
	return c.err
}

// Overflows returns the blocks that ran past their limit.
func (c *DrawContext) Overflows() []*onboard.LayoutError {
	return c.overflows
}

// AddPage starts a new page and paints its background.
func (c *DrawContext) AddPage(g Geometry) {
	if c.err != nil {
		return
	}
	c.surface.AddPage()
	c.Pages++
	c.X, c.Y = g.Margin, g.Margin
	c.PaintBackground(g.Page())
}

// PaintBackground fills box without a border.
func (c *DrawContext) PaintBackground(box LayoutBox) {
	fill, ok := c.resolve(box.Fill)
	if !ok {
		return
	}
	c.surface.SetFillColor(fill.R, fill.G, fill.B)
	c.surface.Rect(box.X, box.Y, box.W, box.H, "F")
}

// PaintBox fills box with its colour and strokes the themed border.
func (c *DrawContext) PaintBox(box LayoutBox) {
	fill, ok := c.resolve(box.Fill)
	if !ok {
		return
	}
	border, ok := c.resolve(onboard.ColorBorder)
	if !ok {
		return
	}
	c.surface.SetFillColor(fill.R, fill.G, fill.B)
	c.surface.SetDrawColor(border.R, border.G, border.B)
	c.surface.Rect(box.X, box.Y, box.W, box.H, "DF")
}

// WriteText paints b wrapped to its width and returns the Y just below the
// last line, which is where the next stacked block can start. An empty text
// paints nothing and returns b.Y.
func (c *DrawContext) WriteText(b TextBlock) float64 {
	if c.err != nil {
		return b.Y
	}
	color, ok := c.resolve(b.Color)
	if !ok {
		return b.Y
	}
	family := b.Family
	if family == "" {
		family = c.opts.Family
	}
	style := ""
	if b.Style.Bold {
		style = "B"
	}
	c.surface.SetFont(family, style, b.Style.Size)
	c.Font = FontState{Family: family, Style: style, Size: b.Style.Size}
	c.surface.SetTextColor(color.R, color.G, color.B)
	c.Color = b.Color

	inner := b.Width - 2*c.surface.GetCellMargin()
	y := b.Y
	for _, line := range wrapText(b.Text, inner, c.surface.GetStringWidth) {
		c.surface.SetXY(b.X, y)
		c.surface.CellFormat(b.Width, b.Style.Leading, line, "", 0, "L", false, 0, "")
		y += b.Style.Leading
	}
	c.X, c.Y = b.X, y
	if b.Limit > 0 && y > b.Limit {
		c.overflow(b.Element, y, b.Limit)
	}
	return y
}

func (c *DrawContext) resolve(key onboard.ColorKey) (onboard.RGB, bool) {
	if c.err != nil {
		return onboard.RGB{}, false
	}
	rgb, err := c.opts.Palette.RGBOf(key)
	if err != nil {
		c.err = err
		return onboard.RGB{}, false
	}
	return rgb, true
}

func (c *DrawContext) overflow(element string, bottom, limit float64) {
	le := &onboard.LayoutError{Lang: c.opts.Lang, Element: element, Bottom: bottom, Limit: limit}
	c.overflows = append(c.overflows, le)
	if c.opts.Strict {
		c.err = le
		return
	}
	c.logger.Warn("text overflows its box",
		zap.String("lang", c.opts.Lang),
		zap.String("element", element),
		zap.Float64("bottom", bottom),
		zap.Float64("limit", limit),
	)
}
