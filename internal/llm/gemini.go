package llm

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator implements Generator over the Gemini API. Gemini has no
// strict schema mode equivalent, so the schema is enforced by asking for
// JSON output and validating the decode.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator backed by the Gemini SDK.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateObject sends the prompt and decodes the JSON reply into out.
func (g *GeminiGenerator) GenerateObject(ctx context.Context, req *Request, out any) error {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		MaxOutputTokens:  int32(cmp.Or(req.MaxTokens, 4096)),
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleModel)
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MediaType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := g.client.Models.GenerateContent(ctx, cmp.Or(req.Model, g.model), contents, config)
	if err != nil {
		return fmt.Errorf("gemini generate: %w", err)
	}

	text := result.Text()
	if text == "" {
		return errors.New("gemini generate: empty response")
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("gemini generate: decode response: %w", err)
	}
	return nil
}
