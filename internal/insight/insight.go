// Package insight produces short motivational text from a generative-text
// API. Every call degrades to a fixed fallback string on any failure;
// errors are logged but never surfaced to callers.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/manasgurde21/DailyGrow/internal/keyring"
	"github.com/manasgurde21/DailyGrow/internal/logger"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"
	requestTimeout = 10 * time.Second

	// EnvAPIKey is the environment variable checked before the OS keyring.
	EnvAPIKey = "GEMINI_API_KEY"
)

// Fallback strings returned when the service is unavailable or errors.
const (
	fallbackMotivationNoKey = "Keep pushing forward! You're doing great."
	fallbackMotivationEmpty = "Believe you can and you're halfway there."
	fallbackMotivationError = "Every small step counts towards a bigger goal."
	fallbackInsightNoKey    = "Consistency is key to building lasting habits."
	fallbackInsightEmpty    = "Tracking your habits is the first step to changing them."
	fallbackInsightError    = "Stay consistent and patient with yourself."
)

// HabitSummary is the habit shape the insight prompt needs.
type HabitSummary struct {
	Name   string
	Streak int
}

// Generator calls the generative-text REST API.
type Generator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// New builds a generator with the given API key. An empty key is allowed;
// calls then return the no-key fallbacks without touching the network.
func New(apiKey string) *Generator {
	return &Generator{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// ResolveAPIKey looks up the API key from the environment, then the OS
// keyring. Returns an empty string if neither has one.
func ResolveAPIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	key, err := keyring.GetAPIKey()
	if err != nil {
		return ""
	}
	return key
}

// GenerateDailyMotivation returns a short motivational quote for a user
// who has completed completedCount of totalCount habits today.
func (g *Generator) GenerateDailyMotivation(ctx context.Context, completedCount, totalCount int) string {
	if g.apiKey == "" {
		return fallbackMotivationNoKey
	}

	prompt := fmt.Sprintf(
		"Generate a short, punchy, inspiring motivational quote (max 15 words) for a user who has completed %d out of %d habits today. If they have done 0, be encouraging. If they are almost done, tell them to finish strong.",
		completedCount, totalCount)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		logger.Warn("Motivation generation failed", "error", err)
		return fallbackMotivationError
	}
	if text == "" {
		return fallbackMotivationEmpty
	}
	return text
}

// GenerateHabitInsight returns one actionable piece of advice for the
// given habits and streaks.
func (g *Generator) GenerateHabitInsight(ctx context.Context, habits []HabitSummary) string {
	if g.apiKey == "" {
		return fallbackInsightNoKey
	}

	summaries := make([]string, 0, len(habits))
	for _, h := range habits {
		summaries = append(summaries, fmt.Sprintf("%s (Streak: %d)", h.Name, h.Streak))
	}
	prompt := fmt.Sprintf(
		"Here are the user's current habits and streaks: %s. Give one specific, actionable piece of advice (max 25 words) on how to improve or maintain these streaks.",
		strings.Join(summaries, ", "))

	text, err := g.generate(ctx, prompt)
	if err != nil {
		logger.Warn("Insight generation failed", "error", err)
		return fallbackInsightError
	}
	if text == "" {
		return fallbackInsightEmpty
	}
	return text
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}
