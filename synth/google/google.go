// Package google synthesizes markup through the Google Cloud
// Text-to-Speech REST API.
package google

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

const defaultEndpoint = "https://texttospeech.googleapis.com/v1/text:synthesize"

// Config holds Google TTS client settings.
type Config struct {
	APIKey   string        `yaml:"api_key" env:"SSMLGEN_GOOGLE_API_KEY"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" env:"SSMLGEN_GOOGLE_TIMEOUT" envDefault:"10s"`
}

// Voice selects a language-specific voice.
type Voice struct {
	LanguageCode string
	Name         string
	Gender       string
}

// Voices for the four supported languages, tuned for Indian telephony.
var defaultVoices = map[string]Voice{
	"english": {LanguageCode: "en-IN", Name: "en-IN-Wavenet-E", Gender: "FEMALE"},
	"hindi":   {LanguageCode: "hi-IN", Name: "hi-IN-Wavenet-E", Gender: "FEMALE"},
	"tamil":   {LanguageCode: "ta-IN", Name: "ta-IN-Wavenet-A", Gender: "FEMALE"},
	"telugu":  {LanguageCode: "te-IN", Name: "te-IN-Standard-A", Gender: "FEMALE"},
}

// Client calls Google Cloud TTS. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client

	mu       sync.RWMutex
	language string
}

// New creates a Google TTS client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("google tts: api key is required")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
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

type synthesizeRequest struct {
	Input       synthesisInput  `json:"input"`
	Voice       voiceSelection  `json:"voice"`
	AudioConfig audioConfigSpec `json:"audioConfig"`
}

type synthesisInput struct {
	SSML string `json:"ssml"`
}

type voiceSelection struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
	SSMLGender   string `json:"ssmlGender"`
}

type audioConfigSpec struct {
	AudioEncoding    string   `json:"audioEncoding"`
	SampleRateHertz  int      `json:"sampleRateHertz"`
	EffectsProfileID []string `json:"effectsProfileId"`
	SpeakingRate     float64  `json:"speakingRate"`
	Pitch            float64  `json:"pitch"`
	VolumeGainDB     float64  `json:"volumeGainDb"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

// Synthesize renders markup to LINEAR16 audio bytes.
func (c *Client) Synthesize(ctx context.Context, markup string) ([]byte, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}

	c.mu.RLock()
	voice := defaultVoices[c.language]
	c.mu.RUnlock()

	reqBody := synthesizeRequest{
		Input: synthesisInput{SSML: markup},
		Voice: voiceSelection{
			LanguageCode: voice.LanguageCode,
			Name:         voice.Name,
			SSMLGender:   voice.Gender,
		},
		AudioConfig: audioConfigSpec{
			AudioEncoding:    "LINEAR16",
			SampleRateHertz:  24000,
			EffectsProfileID: []string{"handset-class-device"},
			SpeakingRate:     1.0,
			Pitch:            0.0,
			VolumeGainDB:     2.0,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("google tts: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.Endpoint+"?key="+c.cfg.APIKey, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("google tts: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google tts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error("google tts synthesis failed",
			"status", resp.StatusCode,
			"voice", voice.Name)
		return nil, fmt.Errorf("google tts: status %d: %s", resp.StatusCode, string(body))
	}

	var out synthesizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("google tts: decode response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(out.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("google tts: decode audio: %w", err)
	}

	log.Debug("google tts synthesis complete",
		"voice", voice.Name,
		"markupBytes", len(markup),
		"audioBytes", len(audio))

	return audio, nil
}

// Close implements synth.Synthesizer; the client holds no resources beyond
// its HTTP transport.
func (c *Client) Close() error { return nil }
