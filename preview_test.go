package onboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWritePlainTextWrapsToWidth(t *testing.T) {
	c := mustCatalog(t)
	en, _ := c.Get("en")
	var out bytes.Buffer
	if err := WritePlainText(&out, en, c.ContactLine(en), 40); err != nil {
		t.Fatalf("WritePlainText: %v", err)
	}
	text := out.String()
	for _, line := range strings.Split(text, "\n") {
		if utf8.RuneCountInString(line) > 40 {
			t.Fatalf("line exceeds 40 columns: %q", line)
		}
	}
	order := []string{en.Tag, en.RulesTitle, en.SendTitle, en.SampleTitle, en.CheckTitle}
	last := -1
	for _, heading := range order {
		idx := strings.Index(text, heading)
		if idx <= last {
			t.Fatalf("%q out of order", heading)
		}
		last = idx
	}
	if !strings.Contains(text, "  1. Photos from all sides\n") {
		t.Fatalf("rule numbering missing:\n%s", text)
	}
	if !strings.Contains(text, "\n      front.jpg\n") {
		t.Fatalf("listing indentation lost:\n%s", text)
	}
}

func TestWritePlainTextMinimumWidth(t *testing.T) {
	c := mustCatalog(t)
	zh, _ := c.Get("zh")
	var out bytes.Buffer
	if err := WritePlainText(&out, zh, c.ContactLine(zh), 1); err != nil {
		t.Fatalf("WritePlainText: %v", err)
	}
	if !strings.Contains(out.String(), "供应商简易指南") {
		t.Fatalf("tag missing from preview")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWritePlainTextReportsWriteErrors(t *testing.T) {
	c := mustCatalog(t)
	en, _ := c.Get("en")
	if err := WritePlainText(failingWriter{}, en, c.ContactLine(en), 80); err == nil {
		t.Fatalf("expected write error")
	}
}
