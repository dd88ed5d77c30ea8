package ssml

import "testing"

func TestClassify(t *testing.T) {
	keywords := DefaultConfig().Keywords

	tests := []struct {
		name     string
		sentence string
		expected Emotion
	}{
		{
			name:     "emergency is urgent",
			sentence: "This is an emergency, come immediately.",
			expected: EmotionUrgent,
		},
		{
			name:     "urgent beats informative",
			sentence: "Your appointment is cancelled due to an emergency.",
			expected: EmotionUrgent,
		},
		{
			name:     "urgent beats empathetic",
			sentence: "Severe chest pain needs an ambulance.",
			expected: EmotionUrgent,
		},
		{
			name:     "worry is empathetic",
			sentence: "I understand you are worried about the surgery.",
			expected: EmotionEmpathetic,
		},
		{
			name:     "family is empathetic",
			sentence: "Your family can stay overnight.",
			expected: EmotionEmpathetic,
		},
		{
			name:     "appointment is informative",
			sentence: "Your appointment is confirmed for tomorrow.",
			expected: EmotionInformative,
		},
		{
			name:     "fees are informative",
			sentence: "The consultation fee must be paid at the counter.",
			expected: EmotionInformative,
		},
		{
			name:     "room context is informative",
			sentence: "Room 204 is ready.",
			expected: EmotionInformative,
		},
		{
			name:     "salutation is greeting",
			sentence: "Hello, how can I help you today?",
			expected: EmotionGreeting,
		},
		{
			name:     "matching is case insensitive",
			sentence: "EMERGENCY WARD IS FULL",
			expected: EmotionUrgent,
		},
		{
			name:     "hindi urgent keyword",
			sentence: "यह आपातकालीन स्थिति है",
			expected: EmotionUrgent,
		},
		{
			name:     "hindi empathetic keyword",
			sentence: "आपको दर्द हो रहा है",
			expected: EmotionEmpathetic,
		},
		{
			name:     "tamil informative keyword",
			sentence: "மருத்துவர் வருவார்",
			expected: EmotionInformative,
		},
		{
			name:     "telugu greeting keyword",
			sentence: "నమస్కారం, మీకు స్వాగతం",
			expected: EmotionGreeting,
		},
		{
			name:     "no keyword falls back to professional",
			sentence: "Please sign at the bottom of the form.",
			expected: EmotionProfessional,
		},
		{
			name:     "empty sentence is professional",
			sentence: "",
			expected: EmotionProfessional,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keywords.Classify(tt.sentence)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.sentence, got, tt.expected)
			}
		})
	}
}

func TestClassifyEmptyKeywordSet(t *testing.T) {
	var empty KeywordSet

	if got := empty.Classify("emergency, please help"); got != EmotionProfessional {
		t.Errorf("empty keyword set classified as %s, want professional", got)
	}
}

func TestEmotionString(t *testing.T) {
	tests := []struct {
		emotion  Emotion
		expected string
	}{
		{EmotionUrgent, "urgent"},
		{EmotionEmpathetic, "empathetic"},
		{EmotionInformative, "informative"},
		{EmotionGreeting, "greeting"},
		{EmotionProfessional, "professional"},
		{Emotion(42), "professional"},
	}

	for _, tt := range tests {
		if got := tt.emotion.String(); got != tt.expected {
			t.Errorf("Emotion(%d).String() = %q, want %q", tt.emotion, got, tt.expected)
		}
	}
}
