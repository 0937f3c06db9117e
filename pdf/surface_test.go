package pdf

import "unicode/utf8"

type recordedRect struct {
	box   LayoutBox
	style string
	fill  [3]int
	draw  [3]int
}

type recordedCell struct {
	x, y, w, h float64
	text       string
	font       FontState
	color      [3]int
}

// fakeSurface records paint calls. Every rune is 0.2mm per point of font size
// wide, so tests can predict line breaks.
type fakeSurface struct {
	pages int
	font  FontState
	text  [3]int
	fill  [3]int
	draw  [3]int
	x, y  float64
	rects []recordedRect
	cells []recordedCell
}

func (s *fakeSurface) AddPage() { s.pages++ }

func (s *fakeSurface) SetFont(family, style string, size float64) {
	s.font = FontState{Family: family, Style: style, Size: size}
}

func (s *fakeSurface) SetTextColor(r, g, b int) { s.text = [3]int{r, g, b} }
func (s *fakeSurface) SetFillColor(r, g, b int) { s.fill = [3]int{r, g, b} }
func (s *fakeSurface) SetDrawColor(r, g, b int) { s.draw = [3]int{r, g, b} }

func (s *fakeSurface) Rect(x, y, w, h float64, style string) {
	s.rects = append(s.rects, recordedRect{box: LayoutBox{X: x, Y: y, W: w, H: h}, style: style, fill: s.fill, draw: s.draw})
}

func (s *fakeSurface) SetXY(x, y float64) { s.x, s.y = x, y }

func (s *fakeSurface) CellFormat(w, h float64, txt, border string, ln int, align string, fill bool, link int, linkStr string) {
	s.cells = append(s.cells, recordedCell{x: s.x, y: s.y, w: w, h: h, text: txt, font: s.font, color: s.text})
	s.x += w
}

func (s *fakeSurface) GetStringWidth(str string) float64 {
	return float64(utf8.RuneCountInString(str)) * s.font.Size * 0.2
}

func (s *fakeSurface) GetCellMargin() float64 { return 1 }

func (s *fakeSurface) boxes(style string) []LayoutBox {
	var out []LayoutBox
	for _, r := range s.rects {
		if r.style == style {
			out = append(out, r.box)
		}
	}
	return out
}
