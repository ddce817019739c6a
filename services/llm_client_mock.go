package services

import "sync"

// MockLLMClient is a mock implementation of LLMClient for testing
type MockLLMClient struct {
	Response    []byte
	ContentType string
	Err         error

	mu       sync.Mutex
	lastURL  string
	lastBody []byte
}

// NewMockLLMClient creates a mock LLM client that answers with the given payload
func NewMockLLMClient(response []byte, contentType string) *MockLLMClient {
	return &MockLLMClient{
		Response:    response,
		ContentType: contentType,
	}
}

// Forward records the call and returns the configured response
func (m *MockLLMClient) Forward(url string, body []byte) ([]byte, string, error) {
	m.mu.Lock()
	m.lastURL = url
	m.lastBody = append([]byte(nil), body...)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, "", m.Err
	}
	return m.Response, m.ContentType, nil
}

// LastCall returns the URL and body of the most recent Forward call
func (m *MockLLMClient) LastCall() (string, []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastURL, m.lastBody
}
