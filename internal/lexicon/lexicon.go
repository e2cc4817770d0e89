// Package lexicon loads the skill keyword list and the role trigger table used by the
// fallback skill scan and by requirement resolution.
// The default table is embedded at compile time; a replacement file can be supplied at startup.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.yaml.in/yaml/v4"
)

//go:embed default.yaml
var defaultYAML []byte

// Lexicon is the read-only keyword configuration
type Lexicon struct {
	Skills   []string  `yaml:"skills"`
	Triggers []Trigger `yaml:"triggers"`
}

// Trigger maps role-description keywords to a default requirement list
type Trigger struct {
	Name         string   `yaml:"name"`
	Keywords     []string `yaml:"keywords"`
	Requirements []string `yaml:"requirements"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the embedded lexicon. It is parsed once per process.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("failed to load embedded lexicon: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}

// Load reads a lexicon from a YAML file. An empty path returns the embedded default.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon file %s: %w", path, err)
	}
	return lex, nil
}

// Parse decodes and validates lexicon YAML
func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon YAML: %w", err)
	}

	for i, skill := range lex.Skills {
		if strings.TrimSpace(skill) == "" {
			return nil, fmt.Errorf("lexicon skills[%d] is empty", i)
		}
	}
	for i, t := range lex.Triggers {
		if len(t.Keywords) == 0 {
			return nil, fmt.Errorf("lexicon trigger %d (%s) has no keywords", i, t.Name)
		}
		if len(t.Requirements) == 0 {
			return nil, fmt.Errorf("lexicon trigger %d (%s) has no requirements", i, t.Name)
		}
	}

	return &lex, nil
}

// RequirementsFor returns a copy of the requirement list of the first trigger whose
// keyword occurs in the role description (case-insensitive), or nil.
func (l *Lexicon) RequirementsFor(roleDescription string) []string {
	role := strings.ToLower(roleDescription)
	for _, t := range l.Triggers {
		for _, kw := range t.Keywords {
			if kw != "" && strings.Contains(role, strings.ToLower(kw)) {
				return append([]string(nil), t.Requirements...)
			}
		}
	}
	return nil
}
