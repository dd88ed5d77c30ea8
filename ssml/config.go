// Package ssml converts raw natural-language responses into speech-synthesis
// markup with emotion-appropriate prosody, normalized numeric readings, and
// pronunciation overrides for a fixed lexicon.
package ssml

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLanguageTag is the BCP-47 tag used when a language name is unknown.
const DefaultLanguageTag = "en-IN"

// PronunciationEntry overrides how a synthesizer reads a single term.
type PronunciationEntry struct {
	Term     string `yaml:"term"`
	Phoneme  string `yaml:"phoneme"`  // IPA string; empty entries are skipped
	Alphabet string `yaml:"alphabet"` // defaults to "ipa"
}

// Config is the immutable configuration for an Engine. It is constructed
// once (DefaultConfig, the viper loader, or by hand), validated, and then
// shared by reference across any number of concurrent Assemble calls.
// Reconfiguration means building a new Config, never mutating an old one.
type Config struct {
	// DefaultLanguage is the logical language name assumed when a call does
	// not resolve to a known language.
	DefaultLanguage string `yaml:"default_language" env:"SSMLGEN_DEFAULT_LANGUAGE" envDefault:"english"`

	// Pause is the inter-sentence break duration.
	Pause time.Duration `yaml:"pause" env:"SSMLGEN_PAUSE" envDefault:"350ms"`

	// LexiconPath optionally points at a YAML lexicon file merged on top of
	// the built-in dictionaries by the loaders.
	LexiconPath string `yaml:"lexicon" env:"SSMLGEN_LEXICON"`

	// Languages maps logical language names to BCP-47 tags. Closed set;
	// unknown names resolve to DefaultLanguageTag.
	Languages map[string]string `yaml:"languages"`

	// Global holds pronunciation entries applied to every language.
	// Order matters: substitution follows slice order, and a later entry
	// with the same term replaces an earlier one.
	Global []PronunciationEntry `yaml:"global"`

	// PerLanguage holds entries merged on top of Global for one language.
	PerLanguage map[string][]PronunciationEntry `yaml:"per_language"`

	// Respell maps proper nouns to literal phonetic respellings applied as
	// plain text before segmentation, for RespellLanguage only. These terms
	// bypass the phoneme-tag mechanism entirely.
	Respell map[string]string `yaml:"respell"`

	// RespellLanguage is the language the Respell table applies to.
	RespellLanguage string `yaml:"respell_language"`

	// Keywords drives the emotion classifier.
	Keywords KeywordSet `yaml:"keywords"`
}

// DefaultConfig returns the built-in configuration: the hospital lexicon,
// multilingual emotion keywords, and the four supported languages.
func DefaultConfig() Config {
	return Config{
		DefaultLanguage: "english",
		Pause:           350 * time.Millisecond,

		Languages: map[string]string{
			"english": "en-IN",
			"hindi":   "hi-IN",
			"tamil":   "ta-IN",
			"telugu":  "te-IN",
		},

		Global: []PronunciationEntry{
			// Hospital names
			{Term: "Yashodha", Phoneme: "jəˈʃoːd̪ʰaː", Alphabet: "ipa"},
			{Term: "Yashoda", Phoneme: "jəˈʃoːd̪ʰaː", Alphabet: "ipa"},
			// Medical terms
			{Term: "pneumonia", Phoneme: "nuːˈmoʊniə", Alphabet: "ipa"},
			{Term: "myocardial infarction", Phoneme: "maɪəˈkɑɹdiəl ɪnˈfɑɹkʃən", Alphabet: "ipa"},
			{Term: "fever", Phoneme: "ˈfiːvər", Alphabet: "ipa"},
			{Term: "headache", Phoneme: "ˈhɛdeɪk", Alphabet: "ipa"},
			// Place names
			{Term: "Chennai", Phoneme: "ˈtʃɛnaj", Alphabet: "ipa"},
			{Term: "Delhi", Phoneme: "ˈd̪ɛli", Alphabet: "ipa"},
			// Language names
			{Term: "Tamil Nadu", Phoneme: "ˈt̪ɑːmɪl ˈnɑːɖu", Alphabet: "ipa"},
			{Term: "Tamil", Phoneme: "ˈt̪ɑːmɪl", Alphabet: "ipa"},
			{Term: "Hindi", Phoneme: "ˈhɪndi", Alphabet: "ipa"},
			// Technical terms
			{Term: "SQL", Phoneme: "ˈɛs kjuː ˈɛl", Alphabet: "ipa"},
			{Term: "GUID", Phoneme: "ˈɡuːɪd", Alphabet: "ipa"},
			{Term: "PostgreSQL", Phoneme: "ˈpoʊstɡrɛs ˈɛs kjuː ˈɛl", Alphabet: "ipa"},
		},

		PerLanguage: map[string][]PronunciationEntry{
			"hindi": {
				{Term: "बुखार", Phoneme: "buˈkʰaːr", Alphabet: "ipa"},
				{Term: "सिरदर्द", Phoneme: "sirˈdərd", Alphabet: "ipa"},
				{Term: "यशोधा", Phoneme: "jəˈʃoːd̪ʰaː", Alphabet: "ipa"},
			},
			"tamil": {
				{Term: "காய்ச்சல்", Phoneme: "kaːjtːʃal", Alphabet: "ipa"},
				{Term: "தலைவலி", Phoneme: "t̪alaɪvali", Alphabet: "ipa"},
				{Term: "மருத்துவமனைக்கு", Phoneme: "maɾuθθuvamaneːkku", Alphabet: "ipa"},
				{Term: "யசோதா", Phoneme: "jəˈʃoːd̪ʰaː", Alphabet: "ipa"},
			},
		},

		Respell: map[string]string{
			"Yashoda":  "ya-show-da",
			"Yashodha": "ya-show-da",
		},
		RespellLanguage: "english",

		Keywords: KeywordSet{
			Urgent: []string{
				// English
				"emergency", "critical", "urgent", "severe", "immediately",
				"call 108", "ambulance", "chest pain", "breathing difficulty",
				"unconscious", "bleeding", "accident",
				// Hindi
				"आपातकालीन", "तत्काल", "आपात", "आपातकाल", "छाती में दर्द",
				"सांस लेने में तकलीफ",
				// Tamil
				"அவசர", "மார்பு வலி", "மூச்சுத்திணறல்",
				// Telugu
				"అత్యవసర", "తీవ్రమైన", "తక్షణ", "గుండె నొప్పి",
				"శ్వాస తీసుకోవడంలో ఇబ్బంది",
			},
			Empathetic: []string{
				// English
				"pain", "suffering", "worried", "concerned", "anxious",
				"afraid", "scared", "baby", "child", "pregnant", "family",
				// Hindi
				"दर्द", "परेशान", "चिंतित", "बच्चा", "शिशु", "गर्भवती", "परिवार",
				// Tamil
				"வலி", "கவலை", "குழந்தை", "குடும்பம்", "கர்ப்பிணி",
				// Telugu
				"నొప్పి", "బాధ", "ఆందోళన", "చింతిత", "బిడ్డ", "గర్భిణీ", "కుటుంబం",
			},
			Informative: []string{
				// English
				"appointment", "schedule", "doctor", "available", "location",
				"directions", "fee", "timing", "consultation", "procedure",
				"test", "results", "registration", "room", "ward",
				// Hindi
				"अपॉइंटमेंट", "डॉक्टर", "उपलब्ध", "स्थान", "शुल्क", "समय",
				"परामर्श", "प्रक्रिया", "परीक्षण",
				// Tamil
				"பதிவு", "மருத்துவர்", "இடம்", "கட்டணம்", "நேரம்",
				// Telugu
				"అపాయింట్మెంట్", "డాక్టర్", "అందుబాటులో", "ప్రదేశం", "రుసుము",
				"సమయం", "సంప్రదింపు", "పరీక్ష",
			},
			Greeting: []string{
				// English
				"hello", "hi", "greetings", "welcome", "good morning",
				"good afternoon",
				// Hindi
				"नमस्ते", "नमस्कार", "स्वागत", "शुभ",
				// Tamil
				"வணக்கம்", "நல்வரவு",
				// Telugu
				"నమస్కారం", "హలో", "స్వాగతం", "శుభోదయం",
			},
		},
	}
}

// LanguageTag resolves a logical language name to its BCP-47 tag.
// Unknown or empty names resolve to DefaultLanguageTag, never an error.
func (c Config) LanguageTag(name string) string {
	if tag, ok := c.Languages[normalizeLanguage(name)]; ok {
		return tag
	}
	return DefaultLanguageTag
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Pause <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidPause, c.Pause)
	}

	if len(c.Languages) == 0 {
		return fmt.Errorf("%w: language table is empty", ErrInvalidConfig)
	}
	for name, tag := range c.Languages {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("%w: %q for language %q: %v", ErrInvalidLanguageTag, tag, name, err)
		}
	}

	if _, ok := c.Languages[normalizeLanguage(c.DefaultLanguage)]; !ok {
		return fmt.Errorf("%w: default language %q not in language table", ErrInvalidConfig, c.DefaultLanguage)
	}

	for _, entry := range c.Global {
		if entry.Term == "" {
			return ErrEmptyTerm
		}
	}
	for lang, entries := range c.PerLanguage {
		if _, ok := c.Languages[normalizeLanguage(lang)]; !ok {
			return fmt.Errorf("%w: dictionary for unknown language %q", ErrInvalidConfig, lang)
		}
		for _, entry := range entries {
			if entry.Term == "" {
				return ErrEmptyTerm
			}
		}
	}

	return nil
}
