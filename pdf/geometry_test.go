package pdf

import (
	"errors"
	"math"
	"testing"

	"pkt.systems/onboard"
)

func TestGridCell(t *testing.T) {
	cases := []struct {
		index, columns int
		row, col       int
	}{
		{0, 3, 0, 0},
		{2, 3, 0, 2},
		{3, 3, 1, 0},
		{8, 3, 2, 2},
		{5, 2, 2, 1},
		{4, 0, 4, 0},
	}
	for _, tc := range cases {
		row, col := GridCell(tc.index, tc.columns)
		if row != tc.row || col != tc.col {
			t.Fatalf("GridCell(%d,%d) = (%d,%d), want (%d,%d)", tc.index, tc.columns, row, col, tc.row, tc.col)
		}
	}
}

func TestGridCellsAreUniqueAndDisjoint(t *testing.T) {
	for _, grid := range []Grid{DefaultGeometry().CardGrid(), DefaultGeometry().CheckGrid()} {
		seen := map[[2]int]bool{}
		var boxes []LayoutBox
		for i := 0; i < 12; i++ {
			row, col := GridCell(i, grid.Columns)
			if seen[[2]int{row, col}] {
				t.Fatalf("cell (%d,%d) assigned twice", row, col)
			}
			seen[[2]int{row, col}] = true
			if r2, c2 := GridCell(i, grid.Columns); r2 != row || c2 != col {
				t.Fatalf("GridCell is not deterministic for %d", i)
			}
			boxes = append(boxes, grid.Box(i))
		}
		for i, a := range boxes {
			for j, b := range boxes {
				if i == j {
					continue
				}
				if a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom() {
					t.Fatalf("boxes %d and %d overlap: %+v %+v", i, j, a, b)
				}
			}
		}
	}
}

func TestCardGridSpansRulesPanel(t *testing.T) {
	g := DefaultGeometry()
	grid := g.CardGrid()
	last := grid.Box(grid.Columns - 1)
	want := g.Margin + g.ContentW() - g.CardGridInset
	if math.Abs(last.Right()-want) > 1e-9 {
		t.Fatalf("last card ends at %v, want %v", last.Right(), want)
	}
	if grid.Rows(9) != 3 || grid.Rows(10) != 4 || grid.Rows(0) != 0 {
		t.Fatalf("unexpected row counts")
	}
	if h := grid.Height(9); h != 3*g.CardH+2*g.CardGap {
		t.Fatalf("height of 9 cards = %v", h)
	}
}

func TestCheckFitDefaultCatalog(t *testing.T) {
	catalog, err := onboard.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	g := DefaultGeometry()
	for _, set := range catalog.Sets {
		if err := g.CheckFit(set); err != nil {
			t.Fatalf("%s: %v", set.Lang, err)
		}
	}
}

func TestCheckFitReportsOverflow(t *testing.T) {
	g := DefaultGeometry()
	set := onboard.ContentSet{Lang: "en"}
	for i := 0; i < 10; i++ {
		set.Rules = append(set.Rules, onboard.Rule{Heading: "h", Body: "b"})
	}
	for i := 0; i < 9; i++ {
		set.Checks = append(set.Checks, "check")
	}
	err := g.CheckFit(set)
	if !errors.Is(err, onboard.ErrLayoutOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	elements := map[string]bool{}
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var le *onboard.LayoutError
		if errors.As(e, &le) {
			elements[le.Element] = true
		}
	}
	if !elements["rule cards"] || !elements["check items"] || len(elements) != 2 {
		t.Fatalf("unexpected overflowing elements %v", elements)
	}
}

func TestCheckFitRejectsBrokenGeometry(t *testing.T) {
	g := DefaultGeometry()
	g.CardColumns = 0
	if err := g.CheckFit(onboard.ContentSet{}); err == nil {
		t.Fatalf("expected error for zero columns")
	}
	g = DefaultGeometry()
	g.InfoLeftW = g.ContentW()
	if err := g.CheckFit(onboard.ContentSet{}); err == nil {
		t.Fatalf("expected error for a left panel filling the page")
	}
}
