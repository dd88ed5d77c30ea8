package ssml

import "strings"

// Emotion is the tone category assigned to a sentence.
type Emotion int

const (
	// EmotionUrgent marks emergencies and anything requiring immediate action.
	EmotionUrgent Emotion = iota
	// EmotionEmpathetic marks sentences about pain, worry, or family.
	EmotionEmpathetic
	// EmotionInformative marks scheduling, location, and fee information.
	EmotionInformative
	// EmotionGreeting marks salutations.
	EmotionGreeting
	// EmotionProfessional is the default when nothing else matches.
	EmotionProfessional
)

// String returns the lowercase name of the emotion.
func (e Emotion) String() string {
	switch e {
	case EmotionUrgent:
		return "urgent"
	case EmotionEmpathetic:
		return "empathetic"
	case EmotionInformative:
		return "informative"
	case EmotionGreeting:
		return "greeting"
	default:
		return "professional"
	}
}

// KeywordSet holds the multilingual keyword evidence for each tone category.
// Each list unions English, Hindi, Tamil, and Telugu terms.
type KeywordSet struct {
	Urgent      []string `yaml:"urgent"`
	Empathetic  []string `yaml:"empathetic"`
	Informative []string `yaml:"informative"`
	Greeting    []string `yaml:"greeting"`
}

// Classify assigns one tone to a sentence. Categories are evaluated in fixed
// priority order and the first one with a keyword hit wins; no match falls
// back to EmotionProfessional. Matching is lowercase substring containment,
// which keeps partial coverage across scripts.
func (k KeywordSet) Classify(sentence string) Emotion {
	lower := strings.ToLower(sentence)

	groups := []struct {
		tone     Emotion
		keywords []string
	}{
		{EmotionUrgent, k.Urgent},
		{EmotionEmpathetic, k.Empathetic},
		{EmotionInformative, k.Informative},
		{EmotionGreeting, k.Greeting},
	}

	for _, g := range groups {
		for _, kw := range g.keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				return g.tone
			}
		}
	}

	return EmotionProfessional
}
