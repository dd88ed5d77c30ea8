// Package mock provides a deterministic synthesizer for tests.
package mock

import (
	"context"
	"strings"
	"sync"
)

// Synthesizer records every call and returns configurable audio.
type Synthesizer struct {
	mu sync.Mutex

	// Control for tests.
	Audio []byte
	Err   error

	// Recorded state.
	language string
	markups  []string
	closed   bool
}

// New creates a mock synthesizer that returns one byte of audio per markup
// byte unless Audio is set.
func New() *Synthesizer {
	return &Synthesizer{language: "english"}
}

// Synthesize records the markup and returns the configured audio or error.
func (s *Synthesizer) Synthesize(_ context.Context, markup string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}
	s.markups = append(s.markups, markup)

	if s.Audio != nil {
		return s.Audio, nil
	}
	return make([]byte, len(markup)), nil
}

// SetLanguage records the selected language.
func (s *Synthesizer) SetLanguage(name string) {
	s.mu.Lock()
	s.language = name
	s.mu.Unlock()
}

// Language returns the last language set.
func (s *Synthesizer) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Markups returns every markup document synthesized so far.
func (s *Synthesizer) Markups() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.markups...)
}

// Close marks the synthesizer closed.
func (s *Synthesizer) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// Closed reports whether Close was called.
func (s *Synthesizer) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
