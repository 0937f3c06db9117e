package pdf

import (
	"strings"
	"unicode"
)

// wrapText splits text into lines no wider than width as reported by
// measure. Hard newlines always break. Lines break at spaces, and around any
// CJK rune since those scripts do not separate words. A single rune wider
// than width gets a line of its own. Full-width closing punctuation stays on
// the line it follows. Leading indentation of each paragraph is
// kept. Empty text yields no lines.
func wrapText(text string, width float64, measure func(string) float64) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width, measure)...)
	}
	return lines
}

func wrapParagraph(para string, width float64, measure func(string) float64) []string {
	runes := []rune(strings.TrimRightFunc(para, unicode.IsSpace))
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	start, brk := 0, -1
	seenText := false
	i := 0
	for i < len(runes) {
		r := runes[i]
		if i > start && seenText {
			switch {
			case r == ' ' || r == '\t':
				brk = i
			case (isCJK(r) || isCJK(runes[i-1])) && !noBreakBefore(r):
				brk = i
			}
		}
		if i > start && measure(string(runes[start:i+1])) > width {
			end := i
			if brk > start {
				end = brk
			}
			lines = append(lines, strings.TrimRightFunc(string(runes[start:end]), unicode.IsSpace))
			start = end
			for start < len(runes) && (runes[start] == ' ' || runes[start] == '\t') {
				start++
			}
			brk = -1
			seenText = false
			i = start
			continue
		}
		if r != ' ' && r != '\t' {
			seenText = true
		}
		i++
	}
	if start < len(runes) {
		lines = append(lines, string(runes[start:]))
	}
	return lines
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) ||
		(r >= 0x3000 && r <= 0x303f) || (r >= 0xff00 && r <= 0xffef)
}

// noBreakBefore reports punctuation that must not start a CJK line.
func noBreakBefore(r rune) bool {
	switch r {
	case '、', '。', '，', '：', '；', '！', '？', '）', '」', '』':
		return true
	default:
		return false
	}
}
