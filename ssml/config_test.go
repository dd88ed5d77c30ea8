package ssml

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig failed validation: %v", err)
	}
}

func TestLanguageTag(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"english", "english", "en-IN"},
		{"hindi", "hindi", "hi-IN"},
		{"tamil", "tamil", "ta-IN"},
		{"telugu", "telugu", "te-IN"},
		{"uppercase normalizes", "TAMIL", "ta-IN"},
		{"surrounding whitespace normalizes", "  hindi ", "hi-IN"},
		{"unknown falls back", "french", DefaultLanguageTag},
		{"empty falls back", "", DefaultLanguageTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.LanguageTag(tt.input); got != tt.expected {
				t.Errorf("LanguageTag(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{
			name:     "zero pause",
			mutate:   func(c *Config) { c.Pause = 0 },
			expected: ErrInvalidPause,
		},
		{
			name:     "negative pause",
			mutate:   func(c *Config) { c.Pause = -time.Second },
			expected: ErrInvalidPause,
		},
		{
			name:     "empty language table",
			mutate:   func(c *Config) { c.Languages = nil },
			expected: ErrInvalidConfig,
		},
		{
			name:     "malformed language tag",
			mutate:   func(c *Config) { c.Languages["english"] = "!!" },
			expected: ErrInvalidLanguageTag,
		},
		{
			name:     "default language not in table",
			mutate:   func(c *Config) { c.DefaultLanguage = "french" },
			expected: ErrInvalidConfig,
		},
		{
			name: "empty global term",
			mutate: func(c *Config) {
				c.Global = append(c.Global, PronunciationEntry{Phoneme: "x"})
			},
			expected: ErrEmptyTerm,
		},
		{
			name: "empty per-language term",
			mutate: func(c *Config) {
				c.PerLanguage["hindi"] = append(c.PerLanguage["hindi"], PronunciationEntry{Phoneme: "x"})
			},
			expected: ErrEmptyTerm,
		},
		{
			name: "dictionary for unknown language",
			mutate: func(c *Config) {
				c.PerLanguage["french"] = []PronunciationEntry{{Term: "bonjour", Phoneme: "bɔ̃ʒuʁ"}}
			},
			expected: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.expected) {
				t.Errorf("Validate() = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestDefaultConfigKeywordsCoverAllLanguages(t *testing.T) {
	keywords := DefaultConfig().Keywords

	for name, list := range map[string][]string{
		"urgent":      keywords.Urgent,
		"empathetic":  keywords.Empathetic,
		"informative": keywords.Informative,
		"greeting":    keywords.Greeting,
	} {
		if len(list) == 0 {
			t.Errorf("default %s keyword list is empty", name)
		}

		var hasNonASCII bool
		for _, kw := range list {
			for _, r := range kw {
				if r > 127 {
					hasNonASCII = true
				}
			}
		}
		if !hasNonASCII {
			t.Errorf("default %s keyword list has no non-Latin entries", name)
		}
	}
}
