// Package genai talks to the generative model that writes narrative answers.
package genai

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	domassistant "example.com/product-qa/internal/domain/assistant"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash"
)

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// Gemini calls the generateContent endpoint once per Generate; it does not retry.
type Gemini struct {
	client *resty.Client
	cfg    Config
}

// New returns a Disabled generator when no API key is configured.
func New(cfg Config) domassistant.Generator {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return Disabled{}
	}
	return NewGemini(cfg)
}

func NewGemini(cfg Config) *Gemini {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)
	return &Gemini{
		client: client,
		cfg:    cfg,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	var (
		result generateResponse
		failed apiError
	)
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", g.cfg.APIKey).
		SetBody(generateRequest{
			Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
			GenerationConfig: generationConfig{
				Temperature:     g.cfg.Temperature,
				MaxOutputTokens: g.cfg.MaxTokens,
			},
		}).
		SetResult(&result).
		SetError(&failed).
		Post("/v1beta/models/" + url.PathEscape(g.cfg.Model) + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp.IsError() {
		if failed.Error.Message != "" {
			return "", fmt.Errorf("gemini status %d (%s): %s", resp.StatusCode(), failed.Error.Status, failed.Error.Message)
		}
		return "", fmt.Errorf("gemini status %d", resp.StatusCode())
	}

	var b strings.Builder
	for _, c := range result.Candidates {
		for _, p := range c.Content.Parts {
			b.WriteString(p.Text)
		}
		if b.Len() > 0 {
			break
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", domassistant.ErrEmptyGeneration
	}
	return text, nil
}

// Disabled is used when no provider is configured; every call fails so the
// caller answers with its fallback message.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (string, error) {
	return "", domassistant.ErrGeneratorDisabled
}
