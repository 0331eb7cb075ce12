package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// ClipClient fetches pronunciation clips for words from the configured
// audio service. Fetching is collaborator glue; the scheduler never blocks
// on it.
type ClipClient struct {
	httpClient *resty.Client
	attempts   uint
}

// NewClipClient creates a ClipClient for the given base URL.
func NewClipClient(baseURL, apiKey string, attempts uint) *ClipClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}
	client.SetTimeout(10 * time.Second)

	if attempts == 0 {
		attempts = 3
	}
	return &ClipClient{
		httpClient: client,
		attempts:   attempts,
	}
}

// Close releases the underlying HTTP client.
func (c *ClipClient) Close() error {
	return c.httpClient.Close()
}

// FetchClip downloads the pronunciation clip for a word. Transient failures
// are retried with backoff.
func (c *ClipClient) FetchClip(ctx context.Context, word string) ([]byte, error) {
	var body []byte

	err := retry.Do(
		func() error {
			resp, err := c.httpClient.R().
				SetContext(ctx).
				SetQueryParam("word", word).
				Get("/clips")
			if err != nil {
				return fmt.Errorf("httpClient.R().Get(/clips) > %w", err)
			}
			if resp.IsError() {
				return fmt.Errorf("response error %d for word %q", resp.StatusCode(), word)
			}
			body = resp.Bytes()
			return nil
		},
		retry.Attempts(c.attempts),
		retry.Delay(200*time.Millisecond),
		retry.Context(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("retry.Do(fetch clip %q) > %w", word, err)
	}

	return body, nil
}
