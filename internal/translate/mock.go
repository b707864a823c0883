package translate

import (
	"context"
	"strings"
	"time"
)

// Mock marks each text with the target language tag instead of translating.
// Used for dry runs and as the fallback when no API key is configured.
type Mock struct {
	// Delay simulates provider latency; zero means no delay.
	Delay time.Duration
}

func (m *Mock) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	tag := "[" + strings.ToUpper(targetLang) + "] "
	translated := make([]string, len(texts))
	for i, t := range texts {
		translated[i] = tag + t
	}
	return translated, nil
}
