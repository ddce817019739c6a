package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LLMClient forwards a raw request body to an externally configured
// text-generation endpoint and relays the response bytes back. The contract
// is deliberately loose: send prompt, receive raw bytes plus content type,
// no shape guarantee. Callers must parse defensively.
type LLMClient interface {
	Forward(url string, body []byte) (data []byte, contentType string, err error)
}

// HTTPLLMClient is the production LLMClient over plain HTTP POST
type HTTPLLMClient struct {
	httpClient *http.Client
}

// NewLLMClient creates an LLM client with a bounded request timeout
func NewLLMClient() *HTTPLLMClient {
	return &HTTPLLMClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Forward POSTs the body unmodified to the configured URL and returns the
// upstream response verbatim. No retries; any failure surfaces to the caller.
func (s *HTTPLLMClient) Forward(url string, body []byte) ([]byte, string, error) {
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to call LLM endpoint: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read LLM response: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
