package onboard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const minPreviewWidth = 20

// WritePlainText writes set as wrapped plain text, width columns wide.
// It mirrors the section order of the PDF guide.
func WritePlainText(w io.Writer, set ContentSet, contact string, width int) error {
	if width < minPreviewWidth {
		width = minPreviewWidth
	}
	bw := bufio.NewWriter(w)
	p := previewWriter{w: bw, width: width}

	p.para(0, set.Tag)
	p.para(0, set.Title)
	p.para(0, set.Description)
	p.blank()

	p.para(0, set.RulesTitle)
	p.para(0, set.RulesSubtitle)
	for i, r := range set.Rules {
		p.para(2, fmt.Sprintf("%d. %s", i+1, r.Heading))
		p.para(5, r.Body)
	}
	p.blank()

	p.para(0, set.SendTitle)
	for _, step := range set.SendSteps {
		p.para(2, step)
	}
	p.para(2, contact)
	p.blank()

	p.para(0, set.SampleTitle)
	for _, line := range set.SampleLines {
		p.line(2, line)
	}
	p.blank()

	p.para(0, set.CheckTitle)
	for _, check := range set.Checks {
		p.para(2, "[ ] "+check)
	}
	p.para(0, set.CheckFooter)

	if p.err != nil {
		return p.err
	}
	return bw.Flush()
}

type previewWriter struct {
	w     *bufio.Writer
	width int
	err   error
}

// para wraps text on word boundaries, then hard-wraps runs without spaces.
func (p *previewWriter) para(pad int, text string) {
	if text == "" {
		return
	}
	avail := p.width - pad
	wrapped := wrap.String(wordwrap.String(text, avail), avail)
	p.write(indent.String(strings.TrimRight(wrapped, "\n"), uint(pad)) + "\n")
}

// line writes text unwrapped, keeping its leading spaces.
func (p *previewWriter) line(pad int, text string) {
	p.write(strings.Repeat(" ", pad) + text + "\n")
}

func (p *previewWriter) blank() {
	p.write("\n")
}

func (p *previewWriter) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(s)
}
