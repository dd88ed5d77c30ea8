package ssml

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vaanilabs/ssmlgen/ssml/sentence"
)

// Engine assembles speech-synthesis markup documents from raw response
// text. An Engine is immutable after construction and safe for concurrent
// use; all per-call state lives on the stack.
type Engine struct {
	cfg Config

	// Compiled once so Assemble stays allocation-light on the hot path.
	termPatterns map[string]*regexp.Regexp
	respellRules []respellRule
}

type respellRule struct {
	pattern *regexp.Regexp
	spoken  string
}

// New validates the configuration and builds an engine from it.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ssml engine: %w", err)
	}

	e := &Engine{
		cfg:          cfg,
		termPatterns: make(map[string]*regexp.Regexp),
	}

	for _, entry := range cfg.Global {
		e.termPatterns[entry.Term] = compileTermPattern(entry.Term)
	}
	for _, entries := range cfg.PerLanguage {
		for _, entry := range entries {
			e.termPatterns[entry.Term] = compileTermPattern(entry.Term)
		}
	}

	for term, spoken := range cfg.Respell {
		e.respellRules = append(e.respellRules, respellRule{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
			spoken:  spoken,
		})
	}

	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Assemble converts raw text into a single well-formed markup document for
// the given logical language, using the configured inter-sentence pause.
func (e *Engine) Assemble(text, lang string) string {
	return e.AssembleWithPause(text, lang, e.cfg.Pause)
}

// AssembleWithPause is Assemble with an explicit inter-sentence pause.
// A non-positive pause falls back to the configured default.
//
// Input that already contains a root wrapper is returned normalized to
// exactly one outer wrapper with no further processing, so pre-formatted
// upstream text passes through untouched and the operation is idempotent.
func (e *Engine) AssembleWithPause(text, lang string, pause time.Duration) string {
	if pause <= 0 {
		pause = e.cfg.Pause
	}
	lang = normalizeLanguage(lang)
	tag := e.cfg.LanguageTag(lang)

	trimmed := strings.TrimSpace(text)

	if strings.Contains(trimmed, "<speak") {
		if strings.HasPrefix(trimmed, "<speak") {
			return trimmed
		}
		return "<speak>" + trimmed + "</speak>"
	}

	if trimmed == "" {
		return `<speak xml:lang="` + tag + `"></speak>`
	}

	if lang == e.cfg.RespellLanguage {
		trimmed = e.applyRespell(trimmed)
	}

	sentences := sentence.Split(trimmed)
	parts := make([]string, 0, len(sentences))
	for _, s := range sentences {
		normalized := Normalize(s)
		tagged := e.Pronounce(normalized, lang)
		// Tone is detected on the raw sentence: normalized text carries
		// markup attribute values that would pollute keyword matching.
		tone := e.Classify(s)
		parts = append(parts, Compose(tagged, tone))
	}

	breakTag := fmt.Sprintf(`<break time="%s"/>`, pause)
	body := strings.Join(parts, breakTag)

	log.Debug("assembled markup",
		"language", lang,
		"tag", tag,
		"sentences", len(sentences),
		"bytes", len(body))

	return fmt.Sprintf("<speak xml:lang=%q>\n  %s\n</speak>", tag, body)
}

// Classify assigns a tone category to one sentence.
func (e *Engine) Classify(s string) Emotion {
	return e.cfg.Keywords.Classify(s)
}

// applyRespell rewrites configured proper nouns as literal phonetic
// spellings in plain text, before any segmentation or tagging.
func (e *Engine) applyRespell(text string) string {
	for _, rule := range e.respellRules {
		text = rule.pattern.ReplaceAllString(text, rule.spoken)
	}
	return text
}

func normalizeLanguage(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
