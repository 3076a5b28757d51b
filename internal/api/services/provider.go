package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rohits-web03/lessonplanner/internal/config"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

// Provider produces lesson plan text for a prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var ErrProviderNotConfigured = errors.New("provider API key is not configured")

const maxProviderResponse = 4 << 20 // 4 MB

// OpenAIProvider calls an OpenAI-compatible chat completions endpoint.
type OpenAIProvider struct {
	client     *http.Client
	endpoint   string
	model      string
	maxTokens  int
	configured bool
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

func NewOpenAIProvider(cfg config.ProviderConfig) *OpenAIProvider {
	// The API key travels as a static bearer token.
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey})
	client := oauth2.NewClient(context.Background(), src)
	client.Timeout = cfg.Timeout

	return &OpenAIProvider{
		client:     client,
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		configured: cfg.APIKey != "",
	}
}

// Generate sends a single user message and returns the first choice's text.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if !p.configured {
		return "", ErrProviderNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model:     p.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: p.maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderResponse))
	if err != nil {
		return "", fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(data, "error.message").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("provider returned %d: %s", resp.StatusCode, msg)
	}

	content := gjson.GetBytes(data, "choices.0.message.content").String()
	if strings.TrimSpace(content) == "" {
		return "", errors.New("provider returned no content")
	}
	return content, nil
}
