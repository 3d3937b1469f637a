package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

const nounPhrasePrompt = `Extract the technical noun phrases from the text below.
Return a JSON array of strings, nothing else. Include tools, technologies,
methodologies, and skills; exclude company names and job titles.

Text:
%s`

// GeminiTagger proposes candidate skill phrases using the Gemini API.
type GeminiTagger struct {
	client *genai.Client
	model  string
}

// NewGeminiTagger creates a tagger backed by the Gemini API. An empty model
// name selects DefaultGeminiModel.
func NewGeminiTagger(ctx context.Context, apiKey, model string) (*GeminiTagger, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTagger{client: client, model: model}, nil
}

// NounPhrases asks the model for candidate technical phrases in the text.
func (t *GeminiTagger) NounPhrases(ctx context.Context, text string) ([]string, error) {
	model := t.client.GenerativeModel(t.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(nounPhrasePrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var phrases []string
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &phrases); err != nil {
		return nil, fmt.Errorf("failed to parse noun phrase response: %w", err)
	}
	return phrases, nil
}

// Close releases resources held by the tagger.
func (t *GeminiTagger) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
