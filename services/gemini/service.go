package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
)

// Placeholder returned when the endpoint answers without a usable candidate.
// The original app treats that case as success, not as an error.
const NoResponsePlaceholder = "No response generated."

type Service struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewService creates a client for the generativelanguage generateContent
// endpoint. No timeout is set; the transport's defaults apply.
func NewService(apiKey, model, baseURL string) *Service {
	if apiKey == "" {
		log.Printf("[WARN] GEMINI_API_KEY is empty; model requests will be rejected upstream")
	}

	return &Service{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// GenerateText sends a plain-text completion request and returns the first
// candidate's text.
func (s *Service) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, nil)
}

// GenerateStructured asks the model for a JSON response. The returned string
// is the raw candidate text; callers are responsible for parsing it.
func (s *Service) GenerateStructured(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, &generationConfig{ResponseMIMEType: "application/json"})
}

func (s *Service) generate(ctx context.Context, prompt string, cfg *generationConfig) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.baseURL, s.model, url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[ERROR] Gemini request returned status %d", resp.StatusCode)
		return "", fmt.Errorf("unexpected response status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return extractText(parsed), nil
}

// extractText pulls candidates[0].content.parts[0].text out of the response.
// A missing candidate or empty parts list yields the placeholder text.
func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return NoResponsePlaceholder
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return NoResponsePlaceholder
	}
	return text
}
