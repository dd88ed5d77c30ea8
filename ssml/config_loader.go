package ssml

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// LoadConfigFromViper loads engine configuration from Viper, starting from
// DefaultConfig and applying only keys the surrounding application set.
func LoadConfigFromViper() (Config, error) {
	cfg := DefaultConfig()

	if viper.IsSet("ssml.default_language") {
		cfg.DefaultLanguage = viper.GetString("ssml.default_language")
	}
	if viper.IsSet("ssml.pause") {
		if d, err := time.ParseDuration(viper.GetString("ssml.pause")); err == nil {
			cfg.Pause = d
		}
	}
	if viper.IsSet("ssml.languages") {
		cfg.Languages = viper.GetStringMapString("ssml.languages")
	}
	if viper.IsSet("ssml.respell_language") {
		cfg.RespellLanguage = viper.GetString("ssml.respell_language")
	}
	if viper.IsSet("ssml.respell") {
		cfg.Respell = viper.GetStringMapString("ssml.respell")
	}
	if viper.IsSet("ssml.keywords.urgent") {
		cfg.Keywords.Urgent = viper.GetStringSlice("ssml.keywords.urgent")
	}
	if viper.IsSet("ssml.keywords.empathetic") {
		cfg.Keywords.Empathetic = viper.GetStringSlice("ssml.keywords.empathetic")
	}
	if viper.IsSet("ssml.keywords.informative") {
		cfg.Keywords.Informative = viper.GetStringSlice("ssml.keywords.informative")
	}
	if viper.IsSet("ssml.keywords.greeting") {
		cfg.Keywords.Greeting = viper.GetStringSlice("ssml.keywords.greeting")
	}
	if viper.IsSet("ssml.lexicon") {
		cfg.LexiconPath = viper.GetString("ssml.lexicon")
	}

	if cfg.LexiconPath != "" {
		lex, err := LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return cfg, fmt.Errorf("load lexicon %q: %w", cfg.LexiconPath, err)
		}
		cfg.ApplyLexicon(lex)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid ssml configuration: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromEnv loads engine configuration from the environment on top
// of DefaultConfig, using the SSMLGEN_* variables declared on Config.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse ssml environment: %w", err)
	}

	if cfg.LexiconPath != "" {
		lex, err := LoadLexicon(cfg.LexiconPath)
		if err != nil {
			return cfg, fmt.Errorf("load lexicon %q: %w", cfg.LexiconPath, err)
		}
		cfg.ApplyLexicon(lex)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid ssml configuration: %w", err)
	}

	return cfg, nil
}

// SetDefaults publishes the engine defaults into Viper so config files only
// need to override what they change.
func SetDefaults() {
	defaults := DefaultConfig()

	viper.SetDefault("ssml.default_language", defaults.DefaultLanguage)
	viper.SetDefault("ssml.pause", defaults.Pause.String())
	viper.SetDefault("ssml.respell_language", defaults.RespellLanguage)
}
