// Package sarvam synthesizes speech through the Sarvam AI REST API, which
// specializes in Indian languages.
package sarvam

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultEndpoint = "https://api.sarvam.ai/text-to-speech"

// Config holds Sarvam client settings.
type Config struct {
	APIKey   string        `yaml:"api_key" env:"SSMLGEN_SARVAM_API_KEY"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" env:"SSMLGEN_SARVAM_TIMEOUT" envDefault:"15s"`
}

// Voice maps a logical language to Sarvam's target code and speaker.
type Voice struct {
	LanguageCode string
	Speaker      string
	Pace         float64
}

var defaultVoices = map[string]Voice{
	"english": {LanguageCode: "en-IN", Speaker: "meera", Pace: 1.0},
	"hindi":   {LanguageCode: "hi-IN", Speaker: "meera", Pace: 1.0},
	"tamil":   {LanguageCode: "ta-IN", Speaker: "meera", Pace: 1.0},
	"telugu":  {LanguageCode: "te-IN", Speaker: "meera", Pace: 1.0},
}

// Client calls the Sarvam API. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client

	mu       sync.RWMutex
	language string
}

// New creates a Sarvam client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("sarvam: api key is required")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
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
	Inputs              []string `json:"inputs"`
	TargetLanguageCode  string   `json:"target_language_code"`
	Speaker             string   `json:"speaker"`
	Pitch               float64  `json:"pitch"`
	Pace                float64  `json:"pace"`
	Loudness            float64  `json:"loudness"`
	SpeechSampleRate    int      `json:"speech_sample_rate"`
	EnablePreprocessing bool     `json:"enable_preprocessing"`
	Model               string   `json:"model"`
}

type ttsResponse struct {
	Audios []string `json:"audios"`
}

// Synthesize renders text to WAV bytes (22050 Hz).
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	c.mu.RLock()
	voice := defaultVoices[c.language]
	c.mu.RUnlock()

	pace := voice.Pace
	if pace < 0.3 {
		pace = 0.3
	} else if pace > 3.0 {
		pace = 3.0
	}

	payload, err := json.Marshal(ttsRequest{
		Inputs:              []string{text},
		TargetLanguageCode:  voice.LanguageCode,
		Speaker:             voice.Speaker,
		Pitch:               0,
		Pace:                pace,
		Loudness:            1.2,
		SpeechSampleRate:    22050,
		EnablePreprocessing: true,
		Model:               "bulbul:v1",
	})
	if err != nil {
		return nil, fmt.Errorf("sarvam: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("sarvam: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-subscription-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sarvam: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error("sarvam synthesis failed",
			"status", resp.StatusCode,
			"speaker", voice.Speaker)
		return nil, fmt.Errorf("sarvam: status %d: %s", resp.StatusCode, string(body))
	}

	var out ttsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("sarvam: decode response: %w", err)
	}
	if len(out.Audios) == 0 {
		return nil, fmt.Errorf("sarvam: response contained no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(out.Audios[0])
	if err != nil {
		return nil, fmt.Errorf("sarvam: decode audio: %w", err)
	}

	log.Debug("sarvam synthesis complete",
		"speaker", voice.Speaker,
		"textBytes", len(text),
		"audioBytes", len(audio))

	return audio, nil
}

// Close implements synth.Synthesizer.
func (c *Client) Close() error { return nil }
