// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator implements the prompt-generation pipeline: it assembles
// a system and user instruction from the caller's selections, forwards them
// to the AI gateway as a single chat completion call, and post-processes the
// response. Failures carry a category and HTTP status so handlers can map
// them without inspecting message text.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Request carries the user's idea and selections into generation. Only Idea
// is required; every other field degrades to a generic fallback phrase in
// the user instruction when empty. Multi-select fields are treated as sets
// of opaque display strings.
type Request struct {
	Idea             string   `json:"userIdea"`
	DesignPatterns   []string `json:"designPatterns"`
	UILibraries      []string `json:"uiLibraries"`
	FontFamily       string   `json:"fontFamily"`
	AuthProvider     string   `json:"authProvider"`
	DatabaseProvider string   `json:"databaseProvider"`
	Theme            string   `json:"theme"`
	AITool           string   `json:"aiTool"`
}

// Category classifies a generation failure.
type Category string

const (
	CategoryValidation         Category = "invalid_input"
	CategoryServiceUnavailable Category = "service_unavailable"
	CategoryRateLimited        Category = "rate_limited"
	CategoryQuotaExhausted     Category = "quota_exhausted"
	CategoryUpstream           Category = "upstream_error"
	CategoryTransport          Category = "transport_error"
)

// Failure describes why a generation attempt did not produce a prompt.
// Status is the HTTP status the API should answer with.
type Failure struct {
	Category Category
	Status   int
	Message  string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("generator: %s: %s", f.Category, f.Message)
}

// Config holds the gateway credentials and model selection.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Sampling parameters for the gateway call. Low temperature favours
// determinism and specificity over creativity; the token bound keeps a
// runaway completion from stalling the request.
const (
	temperature     = 0.3
	maxOutputTokens = 2000
	maxIdeaLen      = 10_000
)

// Service is the prompt-generation service. It is stateless per request:
// one outbound call, no retry — retry/backoff policy belongs to the caller.
type Service struct {
	config Config
	client *http.Client
}

// New creates a generation service for the given gateway config.
func New(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://ai.gateway.lovable.dev/v1"
	}
	return &Service{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Generate runs the full pipeline: validate, build instructions, call the
// gateway, strip the preamble. On failure the returned error is a *Failure.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Idea) == "" {
		return "", &Failure{
			Category: CategoryValidation,
			Status:   http.StatusBadRequest,
			Message:  "Please describe your idea first.",
		}
	}
	if len(req.Idea) > maxIdeaLen {
		return "", &Failure{
			Category: CategoryValidation,
			Status:   http.StatusBadRequest,
			Message:  "Idea is too long (max 10,000 characters).",
		}
	}

	// A missing credential is a deployment problem; don't attempt the call.
	if s.config.APIKey == "" {
		slog.Error("AI gateway key missing in environment")
		return "", &Failure{
			Category: CategoryServiceUnavailable,
			Status:   http.StatusServiceUnavailable,
			Message:  "AI gateway not available right now. Please retry shortly.",
		}
	}

	body := chatRequest{
		Model:           s.config.Model,
		Temperature:     temperature,
		MaxOutputTokens: maxOutputTokens,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: buildUserInstruction(req)},
		},
	}

	text, err := s.doChat(ctx, body)
	if err != nil {
		return "", err
	}

	return StripPreamble(text), nil
}

// doChat performs the HTTP round trip to the gateway's chat completions
// endpoint and maps the response status to the failure taxonomy.
func (s *Service) doChat(ctx context.Context, body chatRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gateway marshal: %w", err)
	}

	url := s.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gateway request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		// Logged but not retried — a second click is the caller's retry.
		slog.Error("AI gateway unreachable", "error", err)
		return "", &Failure{
			Category: CategoryTransport,
			Status:   http.StatusBadGateway,
			Message:  "Could not reach the AI gateway. Please try again.",
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Failure{
			Category: CategoryTransport,
			Status:   http.StatusBadGateway,
			Message:  "Could not read the AI gateway response. Please try again.",
		}
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("AI gateway error",
			"status", resp.StatusCode,
			"body", truncateForLog(respBody),
		)

		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return "", &Failure{
				Category: CategoryRateLimited,
				Status:   http.StatusTooManyRequests,
				Message:  "Rate limit exceeded. Please try again in a moment.",
			}
		case http.StatusPaymentRequired:
			return "", &Failure{
				Category: CategoryQuotaExhausted,
				Status:   http.StatusPaymentRequired,
				Message:  "AI credits exhausted. Please add credits to continue.",
			}
		default:
			return "", &Failure{
				Category: CategoryUpstream,
				Status:   http.StatusInternalServerError,
				Message:  fmt.Sprintf("AI gateway error: %d", resp.StatusCode),
			}
		}
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &Failure{
			Category: CategoryUpstream,
			Status:   http.StatusInternalServerError,
			Message:  "AI gateway returned a malformed response.",
		}
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", &Failure{
			Category: CategoryUpstream,
			Status:   http.StatusInternalServerError,
			Message:  "AI gateway returned no completion.",
		}
	}

	return result.Choices[0].Message.Content, nil
}

// truncateForLog keeps upstream error bodies from flooding the log.
func truncateForLog(b []byte) string {
	const limit = 500
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}

// --- Gateway request/response types (OpenAI-compatible) ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model           string        `json:"model"`
	Temperature     float64       `json:"temperature"`
	MaxOutputTokens int           `json:"max_output_tokens"`
	Messages        []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
