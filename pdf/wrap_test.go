package pdf

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func runeWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "a b c", 10, []string{"a b c"}},
		{"words", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newlines", "a\n\nb\n", 10, []string{"a", "", "b"}},
		{"indent kept", "monitor-001/\n  photos/\n    front.jpg", 40, []string{"monitor-001/", "  photos/", "    front.jpg"}},
		{"cjk", "一二三四五六", 4, []string{"一二三四", "五六"}},
		{"cjk comma stays", "一二三，四五", 3, []string{"一二", "三，四", "五"}},
		{"cjk full stop stays", "一二三。", 3, []string{"一二", "三。"}},
		{"single rune wider than width", "ab", 0.5, []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapText(tc.text, tc.width, runeWidth)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("wrapText(%q, %v) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestWrapTextRespectsWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 12)
	lines := wrapText(text, 23, runeWidth)
	if len(lines) < 5 {
		t.Fatalf("expected at least 5 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if runeWidth(line) > 23 {
			t.Fatalf("line %q exceeds width", line)
		}
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			t.Fatalf("line %q has edge spaces", line)
		}
	}
	if got := strings.Join(lines, " "); got != strings.TrimSpace(text) {
		t.Fatalf("words lost while wrapping: %q", got)
	}
}

func TestWrapTextCJKKeepsEveryRune(t *testing.T) {
	text := "把这些基础资料发给我们，我们就能搭建你的 3D 展馆。"
	lines := wrapText(text, 6, runeWidth)
	for _, line := range lines {
		if runeWidth(line) > 6 {
			t.Fatalf("line %q exceeds width", line)
		}
		if r, _ := utf8.DecodeRuneInString(line); noBreakBefore(r) {
			t.Fatalf("line %q starts with closing punctuation", line)
		}
	}
	joined := strings.ReplaceAll(strings.Join(lines, ""), " ", "")
	if want := strings.ReplaceAll(text, " ", ""); joined != want {
		t.Fatalf("runes lost: got %q want %q", joined, want)
	}
}
