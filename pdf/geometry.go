package pdf

import (
	"errors"
	"fmt"

	"pkt.systems/onboard"
)

// LayoutBox is a painted rectangle in millimetres.
type LayoutBox struct {
	X, Y, W, H float64
	Fill       onboard.ColorKey
}

// Bottom returns the Y coordinate of the lower edge.
func (b LayoutBox) Bottom() float64 { return b.Y + b.H }

// Right returns the X coordinate of the right edge.
func (b LayoutBox) Right() float64 { return b.X + b.W }

// GridCell maps a zero-based item index to its row and column.
func GridCell(index, columns int) (row, col int) {
	if columns <= 0 {
		return index, 0
	}
	return index / columns, index % columns
}

// Grid places equally sized cells row by row.
type Grid struct {
	X, Y         float64
	CellW, CellH float64
	Gap          float64
	Columns      int
	Fill         onboard.ColorKey
}

// Box returns the cell for item index.
func (g Grid) Box(index int) LayoutBox {
	row, col := GridCell(index, g.Columns)
	return LayoutBox{
		X:    g.X + float64(col)*(g.CellW+g.Gap),
		Y:    g.Y + float64(row)*(g.CellH+g.Gap),
		W:    g.CellW,
		H:    g.CellH,
		Fill: g.Fill,
	}
}

// Rows returns the number of rows n items occupy.
func (g Grid) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	if g.Columns <= 0 {
		return n
	}
	return (n + g.Columns - 1) / g.Columns
}

// Height returns the vertical extent of n items.
func (g Grid) Height(n int) float64 {
	rows := g.Rows(n)
	if rows == 0 {
		return 0
	}
	return float64(rows)*g.CellH + float64(rows-1)*g.Gap
}

// Geometry is the fixed page plan. Every box the composer paints is derived
// from these values.
type Geometry struct {
	PageW, PageH float64
	Margin       float64
	PanelPad     float64
	TextGap      float64

	HeaderY, HeaderH float64
	HeaderTextY      float64

	RulesY, RulesH float64
	RulesTextY     float64
	CardGridY      float64
	CardGridInset  float64
	CardH          float64
	CardGap        float64
	CardColumns    int
	CardPad        float64
	CardTextTop    float64

	InfoY, InfoH  float64
	InfoLeftW     float64
	InfoGap       float64
	InfoTextY     float64
	StepGap       float64
	ContactY      float64
	ListingGap    float64
	ListingInset  float64
	ListingFamily string

	CheckY, CheckH  float64
	CheckTitleTop   float64
	CheckGridTop    float64
	CheckItemH      float64
	CheckGap        float64
	CheckColumns    int
	CheckPad        float64
	CheckTextTop    float64
	FooterFromBelow float64
}

// DefaultGeometry returns the A4 plan of the onboarding guide.
func DefaultGeometry() Geometry {
	return Geometry{
		PageW:    210,
		PageH:    297,
		Margin:   12,
		PanelPad: 6,
		TextGap:  1,

		HeaderY:     10,
		HeaderH:     58,
		HeaderTextY: 16,

		RulesY:        74,
		RulesH:        211,
		RulesTextY:    80,
		CardGridY:     96,
		CardGridInset: 4,
		CardH:         58,
		CardGap:       3,
		CardColumns:   3,
		CardPad:       3,
		CardTextTop:   4,

		InfoY:         12,
		InfoH:         122,
		InfoLeftW:     112,
		InfoGap:       4,
		InfoTextY:     18,
		StepGap:       2,
		ContactY:      112,
		ListingGap:    3,
		ListingInset:  4,
		ListingFamily: "Courier",

		CheckY:          140,
		CheckH:          145,
		CheckTitleTop:   6,
		CheckGridTop:    16,
		CheckItemH:      20,
		CheckGap:        4,
		CheckColumns:    2,
		CheckPad:        3,
		CheckTextTop:    3.3,
		FooterFromBelow: 15,
	}
}

// ContentW is the page width inside the margins.
func (g Geometry) ContentW() float64 { return g.PageW - 2*g.Margin }

// Page returns the full-page background box.
func (g Geometry) Page() LayoutBox {
	return LayoutBox{W: g.PageW, H: g.PageH, Fill: onboard.ColorBackground}
}

// HeaderBox is the page one panel holding tag, title and description.
func (g Geometry) HeaderBox() LayoutBox {
	return LayoutBox{X: g.Margin, Y: g.HeaderY, W: g.ContentW(), H: g.HeaderH, Fill: onboard.ColorPanel}
}

// RulesBox is the page one panel around the rule cards.
func (g Geometry) RulesBox() LayoutBox {
	return LayoutBox{X: g.Margin, Y: g.RulesY, W: g.ContentW(), H: g.RulesH, Fill: onboard.ColorPanel}
}

// CardGrid places the rule cards.
func (g Geometry) CardGrid() Grid {
	cols := float64(g.CardColumns)
	w := (g.ContentW() - 2*g.CardGridInset - g.CardGap*(cols-1)) / cols
	return Grid{
		X:       g.Margin + g.CardGridInset,
		Y:       g.CardGridY,
		CellW:   w,
		CellH:   g.CardH,
		Gap:     g.CardGap,
		Columns: g.CardColumns,
		Fill:    onboard.ColorCard,
	}
}

// LeftBox is the page two send instructions panel.
func (g Geometry) LeftBox() LayoutBox {
	return LayoutBox{X: g.Margin, Y: g.InfoY, W: g.InfoLeftW, H: g.InfoH, Fill: onboard.ColorPanel}
}

// RightBox is the page two sample listing panel.
func (g Geometry) RightBox() LayoutBox {
	return LayoutBox{
		X:    g.Margin + g.InfoLeftW + g.InfoGap,
		Y:    g.InfoY,
		W:    g.ContentW() - g.InfoLeftW - g.InfoGap,
		H:    g.InfoH,
		Fill: onboard.ColorPanel,
	}
}

// CheckBox is the page two checklist panel.
func (g Geometry) CheckBox() LayoutBox {
	return LayoutBox{X: g.Margin, Y: g.CheckY, W: g.ContentW(), H: g.CheckH, Fill: onboard.ColorPanel}
}

// CheckGrid places the checklist items.
func (g Geometry) CheckGrid() Grid {
	cols := float64(g.CheckColumns)
	w := (g.ContentW() - 2*g.PanelPad - g.CheckGap*(cols-1)) / cols
	return Grid{
		X:       g.Margin + g.PanelPad,
		Y:       g.CheckY + g.CheckGridTop,
		CellW:   w,
		CellH:   g.CheckItemH,
		Gap:     g.CheckGap,
		Columns: g.CheckColumns,
		Fill:    onboard.ColorCard,
	}
}

// FooterY is where the checklist footer line starts.
func (g Geometry) FooterY() float64 { return g.CheckY + g.CheckH - g.FooterFromBelow }

// CheckFit reports every grid or panel that the item counts of set would push
// past its enclosing box or past the page.
func (g Geometry) CheckFit(set onboard.ContentSet) error {
	var errs []error
	check := func(element string, bottom, limit float64) {
		if bottom > limit {
			errs = append(errs, &onboard.LayoutError{Lang: set.Lang, Element: element, Bottom: bottom, Limit: limit})
		}
	}
	if g.CardColumns <= 0 || g.CheckColumns <= 0 {
		return fmt.Errorf("geometry: grid columns must be positive")
	}
	if g.InfoLeftW+g.InfoGap >= g.ContentW() {
		return fmt.Errorf("geometry: left panel %.1fmm leaves no room for the right panel", g.InfoLeftW)
	}
	check("header panel", g.HeaderBox().Bottom(), g.RulesY)
	check("rules panel", g.RulesBox().Bottom(), g.PageH)
	check("rule cards", g.CardGridY+g.CardGrid().Height(len(set.Rules)), g.RulesBox().Bottom())
	check("info panels", g.LeftBox().Bottom(), g.CheckY)
	check("check panel", g.CheckBox().Bottom(), g.PageH)
	check("check items", g.CheckGrid().Y+g.CheckGrid().Height(len(set.Checks)), g.FooterY())
	return errors.Join(errs...)
}
