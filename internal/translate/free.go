package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	myMemoryEndpoint = "https://api.mymemory.translated.net/get"
	// MyMemory rate-limits anonymous callers; a short pause between texts
	// keeps batches under the limit.
	freeRequestDelay = 200 * time.Millisecond
)

// Free translates through the MyMemory public API, one text per request.
// Individual request failures pass the original text through untranslated;
// the batch itself never fails on a single text.
type Free struct {
	client *http.Client
}

func NewFree() *Free {
	return &Free{client: &http.Client{Timeout: 30 * time.Second}}
}

func (f *Free) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	pair := "en|" + targetLang
	translated := make([]string, 0, len(texts))

	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			translated = append(translated, text)
			continue
		}

		result, err := f.translateOne(ctx, text, pair)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			translated = append(translated, text)
			continue
		}
		translated = append(translated, result)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(freeRequestDelay):
		}
	}
	return translated, nil
}

func (f *Free) translateOne(ctx context.Context, text, pair string) (string, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", pair)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, myMemoryEndpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		ResponseStatus int `json:"responseStatus"`
		ResponseData   struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("translation rejected with status %d", body.ResponseStatus)
	}
	return body.ResponseData.TranslatedText, nil
}
