// Package sentence splits raw response text into sentence units for the
// markup pipeline.
package sentence

import (
	"strings"
	"unicode"
)

// honorifics are title abbreviations whose trailing period does not end a
// sentence ("Dr. Rao" is one sentence, not two).
var honorifics = map[string]bool{
	"dr":   true,
	"mr":   true,
	"mrs":  true,
	"ms":   true,
	"prof": true,
	"st":   true,
}

// Split breaks text into sentences on terminal punctuation (., !, ?, and
// the Devanagari danda) followed by whitespace or end of input. Empty
// fragments are dropped. Pure function of its input.
func Split(text string) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}

		// Swallow runs of terminal punctuation ("?!", "...").
		end := i + 1
		for end < len(runes) && isTerminal(runes[end]) {
			end++
		}

		// A boundary needs whitespace (or end of input) after it; periods
		// inside decimals and similar stay put.
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}

		if runes[i] == '.' && end-i == 1 && endsWithHonorific(runes[start:i]) {
			i = end - 1
			continue
		}

		if frag := strings.TrimSpace(string(runes[start:end])); frag != "" {
			sentences = append(sentences, frag)
		}

		for end < len(runes) && unicode.IsSpace(runes[end]) {
			end++
		}
		start = end
		i = end - 1
	}

	if start < len(runes) {
		if frag := strings.TrimSpace(string(runes[start:])); frag != "" {
			sentences = append(sentences, frag)
		}
	}

	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '।'
}

// endsWithHonorific reports whether the text right before a period ends in
// a known title abbreviation.
func endsWithHonorific(before []rune) bool {
	i := len(before) - 1
	end := i + 1
	for i >= 0 && unicode.IsLetter(before[i]) {
		i--
	}
	// Mid-word periods ("U.S.") are left to the decimal/whitespace rules;
	// only a standalone word is checked here.
	if i >= 0 && !unicode.IsSpace(before[i]) {
		return false
	}
	word := strings.ToLower(string(before[i+1 : end]))
	return honorifics[word]
}
