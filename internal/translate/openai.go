package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"
)

const (
	// Provider calls are retried with a constant backoff before the page
	// batch is declared failed.
	retryInterval = 2 * time.Second
	maxRetries    = 4
)

// OpenAI translates batches through a chat-completion endpoint. The model is
// asked for a JSON array of strings in the original order; a response that
// cannot be parsed is surfaced as visibly marked error strings rather than a
// failed batch.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI builds the provider. An empty baseURL targets api.openai.com;
// Gemini's OpenAI-compatible endpoint is selected by passing its base URL.
func NewOpenAI(apiKey, baseURL string) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  openai.GPT3Dot5Turbo,
	}
}

func (o *OpenAI) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}

	payload, err := json.Marshal(texts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch: %w", err)
	}

	prompt := fmt.Sprintf("Translate the following array of text strings into %s. Return ONLY a JSON array of strings. Maintain original order exactly. \n\n%s", targetLang, payload)

	content, err := backoff.RetryWithData(func() (string, error) {
		response, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful translator helper."},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.3,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create chat completion: %w", err)
		}
		if len(response.Choices) == 0 {
			return "", errors.New("no choices found in response")
		}
		return response.Choices[0].Message.Content, nil
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), maxRetries), ctx))
	if err != nil {
		return nil, err
	}

	return ParseBatchResponse(content, texts), nil
}

// ParseBatchResponse decodes a model response into the translated batch.
// Responses that are not a parseable JSON array fall back to a marked error
// string per original item so the failure stays visible without aborting
// the batch.
func ParseBatchResponse(content string, originals []string) []string {
	clean := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(content, "```json", ""), "```", ""))

	var translated []string
	if err := json.Unmarshal([]byte(clean), &translated); err != nil {
		fallback := make([]string, len(originals))
		for i, t := range originals {
			fallback[i] = "[Error] " + t
		}
		return fallback
	}
	return translated
}
