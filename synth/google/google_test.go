package google

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	client.SetLanguage("Hindi")
	if client.language != "hindi" {
		t.Errorf("language = %q, want hindi", client.language)
	}

	// Unknown names keep the current selection.
	client.SetLanguage("klingon")
	if client.language != "hindi" {
		t.Errorf("language = %q after unknown name, want hindi", client.language)
	}
}

func TestSynthesize(t *testing.T) {
	audio := []byte("fake-linear16-audio")

	var captured synthesizeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query, got %q", r.URL.RawQuery)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(synthesizeResponse{ //nolint:errcheck
			AudioContent: base64.StdEncoding.EncodeToString(audio),
		})
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "test-key", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	client.SetLanguage("tamil")

	markup := `<speak xml:lang="ta-IN">வணக்கம்</speak>`
	got, err := client.Synthesize(context.Background(), markup)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if !bytes.Equal(got, audio) {
		t.Errorf("audio mismatch: got %d bytes, want %d", len(got), len(audio))
	}
	if captured.Input.SSML != markup {
		t.Errorf("request ssml = %q, want %q", captured.Input.SSML, markup)
	}
	if captured.Voice.Name != "ta-IN-Wavenet-A" {
		t.Errorf("voice = %q, want ta-IN-Wavenet-A", captured.Voice.Name)
	}
	if captured.AudioConfig.AudioEncoding != "LINEAR16" || captured.AudioConfig.SampleRateHertz != 24000 {
		t.Errorf("unexpected audio config: %+v", captured.AudioConfig)
	}
}

func TestSynthesizeEmptyMarkup(t *testing.T) {
	client, err := New(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := client.Synthesize(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected no audio for empty markup, got %d bytes", len(got))
	}
}

func TestSynthesizeNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "test-key", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := client.Synthesize(context.Background(), "<speak>x</speak>"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
