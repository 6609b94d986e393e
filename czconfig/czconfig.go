// Package czconfig provides the commit type configuration read by commitizen-style commit prompts.
//
// The configuration is an ordered list of commit types, each made of a machine-readable value and a label displayed
// in the selection menu, plus the maximum length of the commit subject and body.
package czconfig

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultSubjectLimit = 100
	DefaultBodyLimit    = 1000
)

var (
	ErrNoTypes             = errors.New("no commit type configured")
	ErrEmptyValue          = errors.New("commit type value cannot be empty")
	ErrEmptyName           = errors.New("commit type name cannot be empty")
	ErrDuplicateType       = errors.New("duplicate commit type value")
	ErrInvalidSubjectLimit = errors.New("subject limit must be a positive integer")
	ErrInvalidBodyLimit    = errors.New("body limit must be a positive integer")
)

// CommitType is a selectable commit category.
type CommitType struct {
	Value string `json:"value" yaml:"value" toml:"value" mapstructure:"value"`
	Name  string `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
}

// Config is the whole commit prompt configuration. Field names are part of the contract with prompt engines.
type Config struct {
	Types        []CommitType `json:"types" yaml:"types" toml:"types" mapstructure:"types"`
	SubjectLimit int          `json:"subjectLimit" yaml:"subjectLimit" toml:"subjectLimit" mapstructure:"subjectLimit"`
	BodyLimit    int          `json:"bodyLimit" yaml:"bodyLimit" toml:"bodyLimit" mapstructure:"bodyLimit"`
}

var defaultConfig = Config{
	Types: []CommitType{
		{Value: "feat", Name: "feat: ✨ New feature"},
		{Value: "fix", Name: "fix: 🐛 Bug fix"},
		{Value: "docs", Name: "docs: 📚 Documentation changes"},
		{Value: "style", Name: "style: 💄 Formatting changes"},
		{Value: "refactor", Name: "refactor: 🔨 Code refactor"},
		{Value: "test", Name: "test: ✅ Add tests"},
		{Value: "chore", Name: "chore: 🔧 Build process changes"},
	},
	SubjectLimit: DefaultSubjectLimit,
	BodyLimit:    DefaultBodyLimit,
}

// Load returns the default configuration. Each call returns its own copy so callers can never alter the default.
func Load() Config {
	return defaultConfig.Clone()
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	c.Types = slices.Clone(c.Types)
	return c
}

// Validate checks the configuration is usable by a prompt engine and returns the first problem found.
func (c Config) Validate() error {
	if len(c.Types) == 0 {
		return ErrNoTypes
	}

	seen := make(map[string]int, len(c.Types))

	for i, t := range c.Types {
		if t.Value == "" {
			return fmt.Errorf("types[%d]: %w", i, ErrEmptyValue)
		}

		if t.Name == "" {
			return fmt.Errorf("types[%d] (%s): %w", i, t.Value, ErrEmptyName)
		}

		if first, ok := seen[t.Value]; ok {
			return fmt.Errorf("types[%d] and types[%d] share value %q: %w", first, i, t.Value, ErrDuplicateType)
		}

		seen[t.Value] = i
	}

	if c.SubjectLimit <= 0 {
		return fmt.Errorf("got %d: %w", c.SubjectLimit, ErrInvalidSubjectLimit)
	}

	if c.BodyLimit <= 0 {
		return fmt.Errorf("got %d: %w", c.BodyLimit, ErrInvalidBodyLimit)
	}

	return nil
}

// Lookup returns the commit type whose value exactly matches the given one.
func (c Config) Lookup(value string) (CommitType, bool) {
	return lo.Find(c.Types, func(t CommitType) bool {
		return t.Value == value
	})
}

// Values returns the commit type values in display order.
func (c Config) Values() []string {
	return lo.Map(c.Types, func(t CommitType, _ int) string {
		return t.Value
	})
}

func (c Config) ValidType(value string) bool {
	_, ok := c.Lookup(value)
	return ok
}

func (c Config) ValidSubject(subject string) bool {
	return Length(subject) <= c.SubjectLimit
}

func (c Config) ValidBody(body string) bool {
	return Length(body) <= c.BodyLimit
}

// Length returns the number of characters of s. The string is NFC normalized first so that composed and decomposed
// forms of the same text have the same length.
func Length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
