package genai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domassistant "example.com/product-qa/internal/domain/assistant"
)

func TestNew_WithoutAPIKeyIsDisabled(t *testing.T) {
	g := New(Config{})

	_, ok := g.(Disabled)
	require.True(t, ok)

	_, err := g.Generate(context.Background(), "halo")
	require.ErrorIs(t, err, domassistant.ErrGeneratorDisabled)
}

func TestGemini_Generate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Galaxy S24 Ultra "},{"text":"cocok untuk Anda."}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	g := NewGemini(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-test"})

	answer, err := g.Generate(context.Background(), "Saya cari smartphone")

	require.NoError(t, err)
	require.Equal(t, "Galaxy S24 Ultra cocok untuk Anda.", answer)
	require.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	require.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Equal(t, "Saya cari smartphone", gotBody.Contents[0].Parts[0].Text)
	require.Equal(t, 1024, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestGemini_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	g := NewGemini(Config{APIKey: "bad", BaseURL: srv.URL})

	_, err := g.Generate(context.Background(), "halo")

	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
	require.Contains(t, err.Error(), "API key not valid")
}

func TestGemini_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	g := NewGemini(Config{APIKey: "k", BaseURL: srv.URL})

	_, err := g.Generate(context.Background(), "halo")

	require.ErrorIs(t, err, domassistant.ErrEmptyGeneration)
}

func TestGemini_RespectsContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	g := NewGemini(Config{APIKey: "k", BaseURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := g.Generate(ctx, "halo")

	require.Error(t, err)
}
