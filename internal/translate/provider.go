// Package translate implements the batch translate capability behind a
// provider interface, with OpenAI-compatible, free (MyMemory) and mock
// variants selected by configuration.
package translate

import (
	"context"
	"fmt"
	"strings"
)

// Provider translates a batch of texts, returning results in the same length
// and order as the input.
type Provider interface {
	Translate(ctx context.Context, texts []string, targetLang string) ([]string, error)
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderFree   = "free"
	ProviderMock   = "mock"
)

// geminiBaseURL is Google's OpenAI-compatible endpoint, so the Gemini
// variant reuses the same chat-completion client.
const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// NewProvider builds a provider by tag. Tags needing an API key fall back to
// the mock provider when none is supplied, matching the behavior of running
// without credentials.
func NewProvider(name, apiKey string) (Provider, error) {
	switch name {
	case ProviderOpenAI:
		if apiKey == "" {
			return &Mock{}, nil
		}
		return NewOpenAI(apiKey, ""), nil
	case ProviderGemini:
		if apiKey == "" {
			return &Mock{}, nil
		}
		return NewOpenAI(apiKey, geminiBaseURL), nil
	case ProviderFree:
		return NewFree(), nil
	case ProviderMock:
		return &Mock{}, nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", name)
	}
}

// DetectProvider corrects an obviously mismatched provider choice from the
// shape of the API key: OpenAI keys start with "sk-", Google keys with
// "AIza".
func DetectProvider(configured, apiKey string) string {
	switch {
	case strings.HasPrefix(apiKey, "AIza") && configured == ProviderOpenAI:
		return ProviderGemini
	case strings.HasPrefix(apiKey, "sk-") && configured == ProviderGemini:
		return ProviderOpenAI
	default:
		return configured
	}
}
