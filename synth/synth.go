// Package synth defines the narrow capability this system expects from an
// external text-to-speech provider: hand it a finished markup document, get
// audio bytes back.
package synth

import "context"

// Synthesizer converts a speech-synthesis markup document into audio.
type Synthesizer interface {
	// Synthesize renders the markup to audio bytes. Empty input yields
	// empty output without calling the provider.
	Synthesize(ctx context.Context, markup string) ([]byte, error)

	// SetLanguage selects the provider voice for a logical language name
	// ("english", "hindi", "tamil", "telugu"). Unknown names are ignored
	// and the current voice is kept.
	SetLanguage(name string)

	// Close releases any resources held by the synthesizer.
	Close() error
}
