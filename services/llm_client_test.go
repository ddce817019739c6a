package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardRelaysJSON(t *testing.T) {
	var receivedBody []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"silver, 1.8L petrol"}`))
	}))
	defer upstream.Close()

	client := NewLLMClient()
	body := []byte(`{"prompt":"Describe a 2020 Corolla","model":"llama3"}`)

	data, contentType, err := client.Forward(upstream.URL, body)
	require.NoError(t, err)
	assert.Contains(t, contentType, "application/json")
	assert.JSONEq(t, `{"response":"silver, 1.8L petrol"}`, string(data))

	// The request body goes upstream unmodified
	var forwarded map[string]interface{}
	require.NoError(t, json.Unmarshal(receivedBody, &forwarded))
	assert.Equal(t, "Describe a 2020 Corolla", forwarded["prompt"])
	assert.Equal(t, "llama3", forwarded["model"])
}

func TestForwardRelaysPlainText(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("not json at all"))
	}))
	defer upstream.Close()

	client := NewLLMClient()
	data, contentType, err := client.Forward(upstream.URL, []byte(`{"prompt":"hi"}`))
	require.NoError(t, err)
	assert.Contains(t, contentType, "text/plain")
	assert.Equal(t, "not json at all", string(data))
}

func TestForwardUnreachableEndpoint(t *testing.T) {
	client := NewLLMClient()
	_, _, err := client.Forward("http://127.0.0.1:1/generate", []byte(`{"prompt":"hi"}`))
	assert.Error(t, err)
}
