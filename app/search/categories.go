package search

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultCategories []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Category is a keyword group that can contribute a hint sentence to the
// summary and a chip to the suggestions.
type Category struct {
	Name    string `yaml:"name" validate:"required"`
	Pattern string `yaml:"pattern" validate:"required"`
	Hint    string `yaml:"hint"`
	Chip    string `yaml:"chip"`

	re *regexp.Regexp
}

// Matches reports whether the normalized query belongs to the category.
func (c *Category) Matches(normalizedQuery string) bool {
	return c.re.MatchString(normalizedQuery)
}

// Phrasing holds the fixed sentences of the summary.
type Phrasing struct {
	Prompt      string `yaml:"prompt" validate:"required"`
	Found       string `yaml:"found" validate:"required"`
	NotFound    string `yaml:"notFound" validate:"required"`
	TipFound    string `yaml:"tipFound" validate:"required"`
	TipNotFound string `yaml:"tipNotFound" validate:"required"`
}

// Table is the keyword configuration shared by chip extraction and
// summaries.
type Table struct {
	Categories []*Category `yaml:"categories" validate:"dive"`
	Summary    Phrasing    `yaml:"summary"`
}

// LoadTable decodes, validates and compiles a table from YAML.
func LoadTable(r io.Reader) (*Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode category table: %w", err)
	}
	if err := validate.Struct(&t); err != nil {
		return nil, fmt.Errorf("invalid category table: %w", err)
	}

	for _, c := range t.Categories {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", c.Name, err)
		}
		c.re = re
	}
	return &t, nil
}

// LoadTableFile reads a table from path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTable(f)
}

// DefaultTable returns the built-in travel categories.
func DefaultTable() *Table {
	t, err := LoadTable(bytes.NewReader(defaultCategories))
	if err != nil {
		panic(fmt.Sprintf("built-in category table: %v", err))
	}
	return t
}

// Matching returns the categories the normalized query falls into, in
// table order.
func (t *Table) Matching(normalizedQuery string) []*Category {
	var out []*Category
	for _, c := range t.Categories {
		if c.Matches(normalizedQuery) {
			out = append(out, c)
		}
	}
	return out
}
