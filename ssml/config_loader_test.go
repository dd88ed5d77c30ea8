package ssml

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfigFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("ssml.pause", "200ms")
	viper.Set("ssml.default_language", "hindi")
	viper.Set("ssml.keywords.urgent", []string{"code blue"})

	cfg, err := LoadConfigFromViper()
	if err != nil {
		t.Fatalf("LoadConfigFromViper failed: %v", err)
	}

	if cfg.Pause != 200*time.Millisecond {
		t.Errorf("Pause = %v, want 200ms", cfg.Pause)
	}
	if cfg.DefaultLanguage != "hindi" {
		t.Errorf("DefaultLanguage = %q, want hindi", cfg.DefaultLanguage)
	}
	if len(cfg.Keywords.Urgent) != 1 || cfg.Keywords.Urgent[0] != "code blue" {
		t.Errorf("Keywords.Urgent = %v, want [code blue]", cfg.Keywords.Urgent)
	}

	// Unset sections keep their defaults.
	if len(cfg.Global) == 0 {
		t.Error("built-in global dictionary was lost")
	}
	if cfg.RespellLanguage != "english" {
		t.Errorf("RespellLanguage = %q, want english", cfg.RespellLanguage)
	}
}

func TestLoadConfigFromViperDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfigFromViper()
	if err != nil {
		t.Fatalf("LoadConfigFromViper failed: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Pause != defaults.Pause {
		t.Errorf("Pause = %v, want %v", cfg.Pause, defaults.Pause)
	}
	if cfg.DefaultLanguage != defaults.DefaultLanguage {
		t.Errorf("DefaultLanguage = %q, want %q", cfg.DefaultLanguage, defaults.DefaultLanguage)
	}
}

func TestLoadConfigFromViperRejectsInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("ssml.default_language", "french")

	if _, err := LoadConfigFromViper(); err == nil {
		t.Fatal("expected error for default language missing from the table")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SSMLGEN_PAUSE", "450ms")
	t.Setenv("SSMLGEN_DEFAULT_LANGUAGE", "tamil")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv failed: %v", err)
	}

	if cfg.Pause != 450*time.Millisecond {
		t.Errorf("Pause = %v, want 450ms", cfg.Pause)
	}
	if cfg.DefaultLanguage != "tamil" {
		t.Errorf("DefaultLanguage = %q, want tamil", cfg.DefaultLanguage)
	}
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv failed: %v", err)
	}

	if cfg.Pause != 350*time.Millisecond {
		t.Errorf("Pause = %v, want the 350ms default", cfg.Pause)
	}
}

func TestSetDefaultsPublishesIntoViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	if got := viper.GetString("ssml.pause"); got != "350ms" {
		t.Errorf("ssml.pause default = %q, want 350ms", got)
	}
	if got := viper.GetString("ssml.default_language"); got != "english" {
		t.Errorf("ssml.default_language default = %q, want english", got)
	}
}
