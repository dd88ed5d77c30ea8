// Package elevenlabs synthesizes speech through the ElevenLabs REST API.
//
// ElevenLabs takes plain text rather than SSML; callers that need markup
// semantics should prefer the google backend. The portal keeps this adapter
// for voices Google does not offer.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultBaseURL = "https://api.elevenlabs.io/v1"

// Config holds ElevenLabs client settings.
type Config struct {
	APIKey  string        `yaml:"api_key" env:"SSMLGEN_ELEVENLABS_API_KEY"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout" env:"SSMLGEN_ELEVENLABS_TIMEOUT" envDefault:"30s"`
}

// Voice pairs a voice with the model that supports its language.
type Voice struct {
	VoiceID string
	ModelID string
	Speed   float64
}

var defaultVoices = map[string]Voice{
	"english": {VoiceID: "90ipbRoKi4CpHXvKVtl0", ModelID: "eleven_flash_v2_5", Speed: 1.0},
	"hindi":   {VoiceID: "wlmwDR77ptH6bKHZui0l", ModelID: "eleven_turbo_v2_5", Speed: 1.0},
	"tamil":   {VoiceID: "1XNFRxE3WBB7iI0jnm7p", ModelID: "eleven_flash_v2_5", Speed: 1.0},
}

// Client calls the ElevenLabs API. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client

	mu       sync.RWMutex
	language string
}

// New creates an ElevenLabs client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs: api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.Timeout},
		language: "english",
	}, nil
}

// SetLanguage selects the voice for a logical language name.
func (c *Client) SetLanguage(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := defaultVoices[name]; !ok {
		return
	}
	c.mu.Lock()
	c.language = name
	c.mu.Unlock()
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
	Speed           float64 `json:"speed"`
}

// Synthesize renders text to MP3 bytes (22050 Hz, 32 kbps).
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	c.mu.RLock()
	voice := defaultVoices[c.language]
	c.mu.RUnlock()

	payload, err := json.Marshal(ttsRequest{
		Text:    text,
		ModelID: voice.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       0.75,
			SimilarityBoost: 0.75,
			Style:           0.2,
			UseSpeakerBoost: true,
			Speed:           voice.Speed,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s?output_format=mp3_22050_32", c.cfg.BaseURL, voice.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error("elevenlabs synthesis failed",
			"status", resp.StatusCode,
			"voice", voice.VoiceID)
		return nil, fmt.Errorf("elevenlabs: status %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: read audio: %w", err)
	}

	log.Debug("elevenlabs synthesis complete",
		"voice", voice.VoiceID,
		"textBytes", len(text),
		"audioBytes", len(audio))

	return audio, nil
}

// Close implements synth.Synthesizer.
func (c *Client) Close() error { return nil }
