package llm

import (
	"cmp"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIGenerator implements Generator over the OpenAI chat completion API
// with strict structured outputs.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a generator backed by the OpenAI SDK.
// baseURL may point at any OpenAI-compatible endpoint; empty uses the
// official API. model is the fallback when a request names none.
func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIGenerator{client: &client, model: model}
}

// GenerateObject sends the prompt and decodes the schema-constrained JSON
// reply into out.
func (g *OpenAIGenerator) GenerateObject(ctx context.Context, req *Request, out any) error {
	params := openai.ChatCompletionNewParams{
		Model:               cmp.Or(req.Model, g.model),
		MaxCompletionTokens: openai.Int(cmp.Or(req.MaxTokens, 4096)),
		Temperature:         openai.Float(0.3),
	}

	if req.System != "" {
		params.Messages = append(params.Messages, openai.SystemMessage(req.System))
	}
	if req.Image != nil {
		dataURL := fmt.Sprintf("data:%s;base64,%s",
			req.Image.MediaType, base64.StdEncoding.EncodeToString(req.Image.Data))
		params.Messages = append(params.Messages, openai.UserMessage(
			[]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(req.Prompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}))
	} else {
		params.Messages = append(params.Messages, openai.UserMessage(req.Prompt))
	}

	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.SchemaName,
					Schema: req.Schema,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return errors.New("openai completion: no choices returned")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return errors.New("openai completion: empty content")
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("openai completion: decode response: %w", err)
	}
	return nil
}
