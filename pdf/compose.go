package pdf

import (
	"fmt"
	"strings"

	"pkt.systems/onboard"
)

// Compose paints both pages of the guide for set onto ctx.
func Compose(ctx *DrawContext, set onboard.ContentSet, contact string, g Geometry, t Typography) error {
	composeRules(ctx, set, g, t)
	composeInfo(ctx, set, contact, g, t)
	return ctx.Err()
}

// composeRules paints page one: the header panel and the rule card grid.
func composeRules(ctx *DrawContext, set onboard.ContentSet, g Geometry, t Typography) {
	ctx.AddPage(g)

	header := g.HeaderBox()
	ctx.PaintBox(header)
	x := header.X + g.PanelPad
	w := header.W - 2*g.PanelPad
	y := ctx.WriteText(TextBlock{X: x, Y: g.HeaderTextY, Width: w, Style: t.Tag, Color: onboard.ColorAccent, Text: set.Tag}) + g.TextGap
	y = ctx.WriteText(TextBlock{X: x, Y: y, Width: w, Style: t.Title, Color: onboard.ColorText, Text: set.Title}) + g.TextGap
	ctx.WriteText(TextBlock{
		X: x, Y: y, Width: w,
		Style: t.Description, Color: onboard.ColorMuted, Text: set.Description,
		Limit: header.Bottom(), Element: "header",
	})

	panel := g.RulesBox()
	ctx.PaintBox(panel)
	y = ctx.WriteText(TextBlock{X: x, Y: g.RulesTextY, Width: w, Style: t.Heading, Color: onboard.ColorAccent, Text: set.RulesTitle})
	ctx.WriteText(TextBlock{
		X: x, Y: y + g.TextGap, Width: w,
		Style: t.Subtitle, Color: onboard.ColorMuted, Text: set.RulesSubtitle,
		Limit: g.CardGridY, Element: "rules subtitle",
	})

	grid := g.CardGrid()
	for i, rule := range set.Rules {
		box := grid.Box(i)
		ctx.PaintBox(box)
		cx := box.X + g.CardPad
		cw := box.W - 2*g.CardPad
		cy := ctx.WriteText(TextBlock{X: cx, Y: box.Y + g.CardTextTop, Width: cw, Style: t.CardTitle, Color: onboard.ColorText, Text: rule.Heading})
		ctx.WriteText(TextBlock{
			X: cx, Y: cy + g.TextGap, Width: cw,
			Style: t.CardBody, Color: onboard.ColorMuted, Text: rule.Body,
			Limit: box.Bottom(), Element: fmt.Sprintf("rule card %d", i+1),
		})
	}
}

// composeInfo paints page two: send instructions, sample listing and the
// checklist grid.
func composeInfo(ctx *DrawContext, set onboard.ContentSet, contact string, g Geometry, t Typography) {
	ctx.AddPage(g)

	left := g.LeftBox()
	right := g.RightBox()
	ctx.PaintBox(left)
	ctx.PaintBox(right)

	lx := left.X + g.PanelPad
	lw := left.W - 2*g.PanelPad
	y := ctx.WriteText(TextBlock{X: lx, Y: g.InfoTextY, Width: lw, Style: t.Heading, Color: onboard.ColorAccent, Text: set.SendTitle})
	for i, step := range set.SendSteps {
		y = ctx.WriteText(TextBlock{
			X: lx, Y: y + g.StepGap, Width: lw,
			Style: t.Step, Color: onboard.ColorText, Text: step,
			Limit: g.ContactY, Element: fmt.Sprintf("send step %d", i+1),
		})
	}
	ctx.WriteText(TextBlock{
		X: lx, Y: g.ContactY, Width: lw,
		Style: t.Contact, Color: onboard.ColorHighlight, Text: contact,
		Limit: left.Bottom(), Element: "contact",
	})

	rx := right.X + g.PanelPad
	rw := right.W - 2*g.PanelPad
	y = ctx.WriteText(TextBlock{X: rx, Y: g.InfoTextY, Width: rw, Style: t.Heading, Color: onboard.ColorHighlight, Text: set.SampleTitle})
	ctx.WriteText(TextBlock{
		X: rx, Y: y + g.ListingGap, Width: rw - g.ListingInset,
		Family: g.ListingFamily,
		Style:  t.Listing, Color: onboard.ColorText, Text: strings.Join(set.SampleLines, "\n"),
		Limit: right.Bottom(), Element: "sample listing",
	})

	panel := g.CheckBox()
	ctx.PaintBox(panel)
	cx := panel.X + g.PanelPad
	cw := panel.W - 2*g.PanelPad
	ctx.WriteText(TextBlock{X: cx, Y: panel.Y + g.CheckTitleTop, Width: cw, Style: t.Heading, Color: onboard.ColorAccent, Text: set.CheckTitle})

	grid := g.CheckGrid()
	for i, item := range set.Checks {
		box := grid.Box(i)
		ctx.PaintBox(box)
		ctx.WriteText(TextBlock{
			X: box.X + g.CheckPad, Y: box.Y + g.CheckTextTop, Width: box.W - 2*g.CheckPad,
			Style: t.CheckItem, Color: onboard.ColorText, Text: item,
			Limit: box.Bottom(), Element: fmt.Sprintf("check item %d", i+1),
		})
	}

	ctx.WriteText(TextBlock{
		X: cx, Y: g.FooterY(), Width: cw,
		Style: t.Footer, Color: onboard.ColorMuted, Text: set.CheckFooter,
		Limit: panel.Bottom(), Element: "check footer",
	})
}
