package ssml

// Compose wraps sentence markup in the prosody template for its tone.
// The templates are fixed; only the urgent tone carries an extra emphasis
// wrapper.
func Compose(text string, tone Emotion) string {
	switch tone {
	case EmotionUrgent:
		return `<emphasis level="strong"><prosody rate="110%" pitch="+5%" volume="loud">` + text + `</prosody></emphasis>`
	case EmotionEmpathetic:
		return `<prosody rate="90%" pitch="-5%" volume="medium">` + text + `</prosody>`
	case EmotionInformative:
		return `<prosody rate="95%" pitch="0%" volume="medium">` + text + `</prosody>`
	case EmotionGreeting:
		return `<prosody rate="medium" pitch="+5%" volume="medium">` + text + `</prosody>`
	default:
		return `<prosody rate="medium" pitch="0%">` + text + `</prosody>`
	}
}
