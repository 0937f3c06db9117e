package onboard

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RequiredLanguages lists the guides every catalog must carry, in order.
var RequiredLanguages = []string{"en", "ru", "zh"}

// Validate checks that c is complete and that every language has the same
// structure. All problems are reported together in a *ValidationError.
func (c *Catalog) Validate() error {
	var v validator
	if strings.TrimSpace(c.IntakeEmail) == "" {
		v.addf("intake_email is empty")
	}
	v.checkLanguages(c.Sets)
	outputs := make(map[string]string, len(c.Sets))
	for _, s := range c.Sets {
		v.checkSet(s)
		if prev, ok := outputs[s.Output]; ok && s.Output != "" {
			v.addf("%s: output %q already used by %s", s.Lang, s.Output, prev)
		}
		outputs[s.Output] = s.Lang
	}
	v.checkParity(c.Sets)
	return v.err()
}

type validator struct {
	problems []string
}

func (v *validator) addf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}

func (v *validator) checkLanguages(sets []ContentSet) {
	seen := make(map[string]int, len(sets))
	for _, s := range sets {
		seen[s.Lang]++
	}
	for _, lang := range RequiredLanguages {
		if seen[lang] == 0 {
			v.addf("language %q missing", lang)
		}
	}
	for _, s := range sets {
		switch n := seen[s.Lang]; {
		case !isRequiredLanguage(s.Lang):
			v.addf("language %q not supported", s.Lang)
		case n > 1:
			v.addf("language %q listed %d times", s.Lang, n)
			seen[s.Lang] = 1
		}
	}
}

func (v *validator) checkSet(s ContentSet) {
	fields := []struct {
		name  string
		value string
	}{
		{"output", s.Output},
		{"tag", s.Tag},
		{"title", s.Title},
		{"description", s.Description},
		{"rules_title", s.RulesTitle},
		{"rules_subtitle", s.RulesSubtitle},
		{"send_title", s.SendTitle},
		{"sample_title", s.SampleTitle},
		{"check_title", s.CheckTitle},
		{"check_footer", s.CheckFooter},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			v.addf("%s: %s is empty", s.Lang, f.name)
		}
	}
	lists := []struct {
		name string
		n    int
	}{
		{"rules", len(s.Rules)},
		{"send_steps", len(s.SendSteps)},
		{"sample_lines", len(s.SampleLines)},
		{"checks", len(s.Checks)},
	}
	for _, l := range lists {
		if l.n == 0 {
			v.addf("%s: %s is empty", s.Lang, l.name)
		}
	}
	for i, r := range s.Rules {
		if strings.TrimSpace(r.Heading) == "" || strings.TrimSpace(r.Body) == "" {
			v.addf("%s: rule %d needs heading and body", s.Lang, i+1)
		}
	}
	for i, step := range s.SendSteps {
		if strings.TrimSpace(step) == "" {
			v.addf("%s: send step %d is empty", s.Lang, i+1)
		}
	}
	for i, check := range s.Checks {
		if strings.TrimSpace(check) == "" {
			v.addf("%s: check %d is empty", s.Lang, i+1)
		}
	}
	if s.Output != "" {
		if err := ValidateOutputName(s.Output); err != nil {
			v.addf("%s: %v", s.Lang, err)
		}
	}
	switch s.Typography {
	case "", TypographyStandard, TypographyCompact:
	default:
		v.addf("%s: %v", s.Lang, &ConfigError{Kind: "typography", Key: s.Typography, Err: ErrUnknownTypography})
	}
}

// checkParity compares every set against the first one.
func (v *validator) checkParity(sets []ContentSet) {
	if len(sets) < 2 {
		return
	}
	ref := sets[0]
	for _, s := range sets[1:] {
		if len(s.Rules) != len(ref.Rules) {
			v.addf("%s: %d rules, %s has %d", s.Lang, len(s.Rules), ref.Lang, len(ref.Rules))
		}
		if len(s.SendSteps) != len(ref.SendSteps) {
			v.addf("%s: %d send steps, %s has %d", s.Lang, len(s.SendSteps), ref.Lang, len(ref.SendSteps))
		}
		if len(s.SampleLines) != len(ref.SampleLines) {
			v.addf("%s: %d sample lines, %s has %d", s.Lang, len(s.SampleLines), ref.Lang, len(ref.SampleLines))
		}
		if len(s.Checks) != len(ref.Checks) {
			v.addf("%s: %d checks, %s has %d", s.Lang, len(s.Checks), ref.Lang, len(ref.Checks))
		}
	}
}

// ValidateOutputName accepts plain ".pdf" file names without directories.
func ValidateOutputName(name string) error {
	if strings.ContainsAny(name, "/\\\x00") || name != filepath.Base(name) {
		return fmt.Errorf("output %q must be a file name, not a path", name)
	}
	if name == ".pdf" || !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return fmt.Errorf("output %q must end in .pdf", name)
	}
	return nil
}

func isRequiredLanguage(lang string) bool {
	for _, l := range RequiredLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
