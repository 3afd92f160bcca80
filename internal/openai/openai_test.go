package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/styleadvisor/styleadvisor/internal/providers"
)

const completionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [
    {"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"chosen_color\": \"Ruby\"}"}}
  ]
}`

func testRequest() providers.Request {
	return providers.Request{
		System:    "system text",
		Prompt:    "prompt text",
		Image:     []byte{0xff, 0xd8, 0xff},
		MIMEType:  "image/jpeg",
		MaxTokens: 150,
	}
}

func TestComplete(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	provider := New("test-key", srv.URL+"/", "")
	reply, err := provider.Complete(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, `{"chosen_color": "Ruby"}`, reply)

	require.Equal(t, DefaultModel, captured["model"])
	require.EqualValues(t, 150, captured["max_tokens"])

	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)

	system := messages[0].(map[string]any)
	require.Equal(t, "system", system["role"])
	require.Equal(t, "system text", system["content"])

	user := messages[1].(map[string]any)
	require.Equal(t, "user", user["role"])
	parts := user["content"].([]any)
	require.Len(t, parts, 2)
	require.Equal(t, "prompt text", parts[0].(map[string]any)["text"])
	imageURL := parts[1].(map[string]any)["image_url"].(map[string]any)["url"].(string)
	require.True(t, strings.HasPrefix(imageURL, "data:image/jpeg;base64,"), imageURL)
}

func TestCompleteClassifiesErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		class  error
	}{
		{name: "bad key", status: http.StatusUnauthorized, class: providers.ErrAuth},
		{name: "rate limited", status: http.StatusTooManyRequests, class: providers.ErrRateLimit},
		{name: "server error", status: http.StatusInternalServerError, class: providers.ErrService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error": {"message": "nope", "type": "invalid_request_error"}}`))
			}))
			defer srv.Close()

			_, err := New("test-key", srv.URL+"/", "gpt-4o").Complete(context.Background(), testRequest())
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.class), err.Error())
			require.Equal(t, 1, calls, "requests must not be retried")
		})
	}
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`))
	}))
	defer srv.Close()

	_, err := New("test-key", srv.URL+"/", "").Complete(context.Background(), testRequest())
	require.ErrorIs(t, err, providers.ErrEmptyReply)
}
