package ssml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon is the on-disk form of the pronunciation dictionaries. Entries
// are lists, not maps, so file order is substitution order.
type Lexicon struct {
	Global    []PronunciationEntry            `yaml:"global"`
	Languages map[string][]PronunciationEntry `yaml:"languages"`
}

// LoadLexicon reads a YAML lexicon file.
func LoadLexicon(path string) (Lexicon, error) {
	var lex Lexicon

	data, err := os.ReadFile(path)
	if err != nil {
		return lex, fmt.Errorf("read lexicon: %w", err)
	}
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return lex, fmt.Errorf("decode lexicon: %w", err)
	}

	return lex, nil
}

// ApplyLexicon appends lexicon entries after the built-in ones, so a file
// entry for an existing term overrides the built-in pronunciation.
func (c *Config) ApplyLexicon(lex Lexicon) {
	c.Global = append(c.Global, lex.Global...)

	if len(lex.Languages) == 0 {
		return
	}
	if c.PerLanguage == nil {
		c.PerLanguage = make(map[string][]PronunciationEntry, len(lex.Languages))
	}
	for lang, entries := range lex.Languages {
		lang = normalizeLanguage(lang)
		c.PerLanguage[lang] = append(c.PerLanguage[lang], entries...)
	}
}
