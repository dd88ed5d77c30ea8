package ssml

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// The normalizer runs in two phases. A pre-pass rewrites currency forms,
// two fixed time pronunciations, and the "Dr." title over the whole
// sentence. A token pass then finds every numeric token exactly once,
// classifies it, and emits the rewritten sentence in a single walk, so text
// produced by one rule can never be re-matched by another. Tokens inside
// existing markup are excluded, so numbers the normalizer already wrapped
// are never wrapped again if its output flows back through.

var (
	currencyRules = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`Rs\.\s*(\d+)`), "rupees $1"},
		{regexp.MustCompile(`Rs\s*(\d+)`), "rupees $1"},
		{regexp.MustCompile(`INR\s*(\d+)`), "rupees $1"},
		{regexp.MustCompile(`₹\s*(\d+)`), "rupees $1"},
	}

	// Two pronunciations the general time rules get wrong on common
	// telephony hardware, fixed verbatim.
	threePMRule   = regexp.MustCompile(`\b3[: ]00\s*[Pp][Mm]\b`)
	twoThirtyRule = regexp.MustCompile(`\b2[: ]30\s*[Pp][Mm]\b`)

	// "Dr. " read as "Doctor" keeps the abbreviation period out of the
	// synthesized speech.
	titleRule = regexp.MustCompile(`Dr\.\s+`)

	clockPeriodPattern = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*([APap][Mm])\b`)
	datePattern        = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	clockPattern       = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	integerPattern     = regexp.MustCompile(`\b\d+\b`)

	// markupSpanPattern covers say-as elements with their content plus any
	// bare tag, so numbers already wrapped in markup are never tokenized
	// again when normalized text flows back through.
	markupSpanPattern = regexp.MustCompile(`<say-as[^>]*>[^<]*</say-as>|<[^>]*>`)
)

// literalNumbers are round values read as words, never as cardinal markup.
var literalNumbers = map[string]string{
	"100":  "one hundred",
	"200":  "two hundred",
	"500":  "five hundred",
	"1000": "one thousand",
}

// roomWords are the context words that make the following numeral spell out
// character by character.
var roomWords = map[string]bool{
	"room":    true,
	"ward":    true,
	"chamber": true,
	"cabin":   true,
}

type tokenKind int

const (
	tokenClockPeriod tokenKind = iota
	tokenDate
	tokenClock
	tokenInteger
)

// token is a classified, non-overlapping numeric span within a sentence.
type token struct {
	start, end int
	kind       tokenKind
	groups     []string
}

// Normalize rewrites currency, number, date, time, and room-number
// substrings of one sentence into spoken or tagged form. It is a total
// function: substrings that match no rule pass through unchanged.
func Normalize(sentence string) string {
	s := prePass(sentence)

	tokens := tokenize(s)
	if len(tokens) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, t := range tokens {
		b.WriteString(s[last:t.start])
		b.WriteString(rewrite(s, t))
		last = t.end
	}
	b.WriteString(s[last:])
	return b.String()
}

// prePass applies the unconditional, order-sensitive whole-sentence
// rewrites before tokenization.
func prePass(s string) string {
	for _, rule := range currencyRules {
		s = rule.re.ReplaceAllString(s, rule.repl)
	}
	s = threePMRule.ReplaceAllString(s, "three PM")
	s = twoThirtyRule.ReplaceAllString(s, "two thirty PM")
	s = titleRule.ReplaceAllString(s, "Doctor ")
	return s
}

// tokenize finds every numeric token once. Candidate matches are gathered
// per pattern in priority order (time-with-period, date, time, bare
// integer), then swept left to right keeping the first non-overlapping
// span at each position. Candidates inside existing markup are discarded,
// so markup emitted by an earlier call never matches again.
func tokenize(s string) []token {
	var candidates []token
	protected := markupSpanPattern.FindAllStringIndex(s, -1)

	collect := func(re *regexp.Regexp, kind tokenKind) {
		for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
			if insideMarkup(protected, m[0], m[1]) {
				continue
			}
			t := token{start: m[0], end: m[1], kind: kind}
			for g := 1; g*2 < len(m); g++ {
				t.groups = append(t.groups, s[m[g*2]:m[g*2+1]])
			}
			candidates = append(candidates, t)
		}
	}

	collect(clockPeriodPattern, tokenClockPeriod)
	collect(datePattern, tokenDate)
	collect(clockPattern, tokenClock)
	collect(integerPattern, tokenInteger)

	// Stable selection: earlier start first, pattern priority breaks ties.
	sortTokens(candidates)

	var accepted []token
	lastEnd := -1
	for _, t := range candidates {
		if t.start < lastEnd {
			continue
		}
		accepted = append(accepted, t)
		lastEnd = t.end
	}
	return accepted
}

// insideMarkup reports whether [start, end) overlaps any protected span.
func insideMarkup(spans [][]int, start, end int) bool {
	for _, span := range spans {
		if start < span[1] && span[0] < end {
			return true
		}
	}
	return false
}

func sortTokens(tokens []token) {
	// Insertion sort keeps this dependency-free; token counts per sentence
	// are tiny.
	for i := 1; i < len(tokens); i++ {
		for j := i; j > 0; j-- {
			a, b := tokens[j-1], tokens[j]
			if b.start < a.start || (b.start == a.start && b.kind < a.kind) {
				tokens[j-1], tokens[j] = b, a
			} else {
				break
			}
		}
	}
}

// rewrite emits the replacement text for one token.
func rewrite(s string, t token) string {
	raw := s[t.start:t.end]

	switch t.kind {
	case tokenClockPeriod:
		return rewriteClockPeriod(t.groups[0], t.groups[1], t.groups[2])
	case tokenDate:
		return rewriteDate(t.groups[0], t.groups[1], t.groups[2])
	case tokenClock:
		return rewriteClock(t.groups[0], t.groups[1])
	default:
		return rewriteInteger(s, t.start, raw)
	}
}

func rewriteClockPeriod(hour, minute, period string) string {
	p := strings.ToLower(period)
	switch minuteValue(minute) {
	case 0:
		return hour + " " + p
	case 30:
		return hour + " thirty " + p
	default:
		return hour + " " + minute + " " + p
	}
}

func rewriteClock(hour, minute string) string {
	switch minuteValue(minute) {
	case 0:
		return hour + " o'clock"
	case 30:
		return hour + " thirty"
	default:
		return `<say-as interpret-as="time" format="hms24">` + hour + ":" + minute + `</say-as>`
	}
}

func rewriteDate(day, month, year string) string {
	if len(year) == 2 {
		year = "20" + year
	}
	return `<say-as interpret-as="date" format="dmy">` + day + "/" + month + "/" + year + `</say-as>`
}

func rewriteInteger(s string, start int, number string) string {
	switch {
	case len(number) == 10:
		return `<say-as interpret-as="telephone">` + number + `</say-as>`
	case followsRoomWord(s, start):
		return `<say-as interpret-as="characters">` + number + `</say-as>`
	}
	if words, ok := literalNumbers[number]; ok {
		return words
	}
	return `<say-as interpret-as="cardinal">` + number + `</say-as>`
}

// followsRoomWord reports whether the word immediately before position
// start is a room-context word.
func followsRoomWord(s string, start int) bool {
	runes := []rune(s[:start])

	i := len(runes) - 1
	for i >= 0 && unicode.IsSpace(runes[i]) {
		i--
	}
	end := i + 1
	for i >= 0 && unicode.IsLetter(runes[i]) {
		i--
	}
	word := strings.ToLower(string(runes[i+1 : end]))
	return roomWords[word]
}

func minuteValue(minute string) int {
	v, err := strconv.Atoi(minute)
	if err != nil {
		return -1
	}
	return v
}
