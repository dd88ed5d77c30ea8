package ssml

import (
	"regexp"
	"strings"
)

// Pronunciation substitution tags lexicon terms with their IPA phonemes.
// The sentence is held as a list of segments; a segment produced by a
// substitution is locked, so a term that happens to be a substring of an
// already-inserted phoneme span is never re-tagged.

type segment struct {
	text   string
	locked bool
}

// mergedDictionary builds Global ∪ PerLanguage[lang], preserving insertion
// order. A later entry with the same term replaces the earlier one in place,
// so language dictionaries override global pronunciations.
func (e *Engine) mergedDictionary(lang string) []PronunciationEntry {
	perLang := e.cfg.PerLanguage[lang]

	merged := make([]PronunciationEntry, 0, len(e.cfg.Global)+len(perLang))
	index := make(map[string]int, len(e.cfg.Global)+len(perLang))

	add := func(entry PronunciationEntry) {
		if i, ok := index[entry.Term]; ok {
			merged[i] = entry
			return
		}
		index[entry.Term] = len(merged)
		merged = append(merged, entry)
	}

	for _, entry := range e.cfg.Global {
		add(entry)
	}
	for _, entry := range perLang {
		add(entry)
	}

	return merged
}

// Pronounce replaces every whole-word occurrence of each dictionary term
// with a phoneme-tagged span. Entries without a phoneme are skipped
// silently. For the respell language, terms covered by the literal respell
// table are excluded here because they were already rewritten as plain text
// earlier in the pipeline.
func (e *Engine) Pronounce(sentence, lang string) string {
	lang = normalizeLanguage(lang)

	segs := []segment{{text: sentence}}
	for _, entry := range e.mergedDictionary(lang) {
		if entry.Phoneme == "" {
			continue
		}
		if lang == e.cfg.RespellLanguage && e.isRespelled(entry.Term) {
			continue
		}
		segs = substituteTerm(segs, entry, e.termPattern(entry.Term))
	}

	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.text)
	}
	return b.String()
}

func (e *Engine) isRespelled(term string) bool {
	lower := strings.ToLower(term)
	for respelled := range e.cfg.Respell {
		if strings.ToLower(respelled) == lower {
			return true
		}
	}
	return false
}

// substituteTerm rewrites unlocked segments only, splitting each around its
// matches and locking the inserted phoneme tags.
func substituteTerm(segs []segment, entry PronunciationEntry, pattern *regexp.Regexp) []segment {
	alphabet := entry.Alphabet
	if alphabet == "" {
		alphabet = "ipa"
	}
	tag := `<phoneme alphabet="` + alphabet + `" ph="` + entry.Phoneme + `">` + entry.Term + `</phoneme>`

	out := make([]segment, 0, len(segs))
	for _, seg := range segs {
		if seg.locked {
			out = append(out, seg)
			continue
		}

		locs := pattern.FindAllStringIndex(seg.text, -1)
		if locs == nil {
			out = append(out, seg)
			continue
		}

		last := 0
		for _, loc := range locs {
			if loc[0] > last {
				out = append(out, segment{text: seg.text[last:loc[0]]})
			}
			out = append(out, segment{text: tag, locked: true})
			last = loc[1]
		}
		if last < len(seg.text) {
			out = append(out, segment{text: seg.text[last:]})
		}
	}
	return out
}

// termPattern returns the cached match pattern for a term. ASCII terms get
// word-boundary anchors; RE2's \b is ASCII-only, so non-Latin terms fall
// back to literal containment, matching how the keyword tables behave.
func (e *Engine) termPattern(term string) *regexp.Regexp {
	if p, ok := e.termPatterns[term]; ok {
		return p
	}
	return compileTermPattern(term)
}

func compileTermPattern(term string) *regexp.Regexp {
	if isASCIIWord(term) {
		return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
