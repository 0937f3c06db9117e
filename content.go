package onboard

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Typography presets understood by the PDF renderer.
const (
	TypographyStandard = "standard"
	// TypographyCompact shrinks every size for scripts with dense glyphs.
	TypographyCompact = "compact"
)

// MaxCatalogSize bounds content files read from disk.
const MaxCatalogSize = 1 << 20

//go:embed content.yaml
var defaultCatalogYAML []byte

// Rule is one card of the "what to send" grid.
type Rule struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// ContentSet is the translated text of one onboarding guide.
type ContentSet struct {
	Lang          string   `yaml:"lang"`
	Output        string   `yaml:"output"`
	Typography    string   `yaml:"typography"`
	Tag           string   `yaml:"tag"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	RulesTitle    string   `yaml:"rules_title"`
	RulesSubtitle string   `yaml:"rules_subtitle"`
	Rules         []Rule   `yaml:"rules"`
	SendTitle     string   `yaml:"send_title"`
	SendSteps     []string `yaml:"send_steps"`
	ContactLabel  string   `yaml:"contact_label"`
	SampleTitle   string   `yaml:"sample_title"`
	SampleLines   []string `yaml:"sample_lines"`
	CheckTitle    string   `yaml:"check_title"`
	Checks        []string `yaml:"checks"`
	CheckFooter   string   `yaml:"check_footer"`
}

// Catalog is the read-only table of content sets, in rendering order.
type Catalog struct {
	IntakeEmail string       `yaml:"intake_email"`
	Sets        []ContentSet `yaml:"languages"`
}

// DefaultCatalog decodes the content table compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// LoadCatalogFile reads an alternative content table from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("content file %s: is a directory", path)
	}
	if info.Size() > MaxCatalogSize {
		return nil, fmt.Errorf("content file %s: %d bytes exceeds %d", path, info.Size(), MaxCatalogSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes a YAML content table. Unknown fields are rejected.
func ParseCatalog(data []byte) (*Catalog, error) {
	if len(data) == 0 {
		return nil, errors.New("empty content table")
	}
	var c Catalog
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("decode content table: %w", err)
	}
	return &c, nil
}

// Languages returns the language codes in table order.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.Sets))
	for _, s := range c.Sets {
		langs = append(langs, s.Lang)
	}
	return langs
}

// Get returns the content set for lang.
func (c *Catalog) Get(lang string) (ContentSet, error) {
	for _, s := range c.Sets {
		if s.Lang == lang {
			return s, nil
		}
	}
	return ContentSet{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
}

// ContactLine formats the intake contact shown on page two.
func (c *Catalog) ContactLine(set ContentSet) string {
	label := set.ContactLabel
	if label == "" {
		label = "Intake"
	}
	return label + ": " + c.IntakeEmail
}
