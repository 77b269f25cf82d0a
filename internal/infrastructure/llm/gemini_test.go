package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthcare-management-system/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func newTestClient(t *testing.T, serverURL, apiKey string) Client {
	client, err := NewGeminiClient(context.Background(), config.LLMConfig{
		APIKey:  apiKey,
		Model:   "gemini-1.5-flash",
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestGenerate_ReturnsFirstCandidate(t *testing.T) {
	var received recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/models/gemini-1.5-flash:generateContent")
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  Your vitals look stable. "}]}}]}`))
	}))
	defer server.Close()

	answer, err := newTestClient(t, server.URL, "test-key").Generate(context.Background(), []Message{
		{Role: "user", Text: "hello"},
		{Role: "model", Text: "hi"},
		{Role: "system", Text: "summarize"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Your vitals look stable.", answer)

	require.Len(t, received.Contents, 3)
	assert.Equal(t, "user", received.Contents[0].Role)
	assert.Equal(t, "model", received.Contents[1].Role)
	assert.Equal(t, "user", received.Contents[2].Role)
	require.Len(t, received.Contents[2].Parts, 1)
	assert.Equal(t, "summarize", received.Contents[2].Parts[0].Text)
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := newTestClient(t, "http://127.0.0.1:0", "").Generate(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"model overloaded","status":"INVALID_ARGUMENT"}}`))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, "k").Generate(context.Background(), []Message{{Text: "q"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model overloaded")
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL, "k").Generate(context.Background(), []Message{{Text: "q"}})
		assert.ErrorIs(t, err, ErrEmptyAnswer)
	})
}
