package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/styleadvisor/styleadvisor/internal/providers"
)

func testRequest() providers.Request {
	return providers.Request{
		System:    "system text",
		Prompt:    "prompt text",
		Image:     []byte{0xff, 0xd8, 0xff},
		MIMEType:  "image/jpeg",
		MaxTokens: 800,
	}
}

func testProvider(srv *httptest.Server, model string) *Gemini {
	return New("test-key", model, option.WithEndpoint(srv.URL), option.WithHTTPClient(srv.Client()))
}

func TestNewDefaults(t *testing.T) {
	g := New("key", "")
	require.Equal(t, DefaultModel, g.model)
	require.Equal(t, "gemini", g.Name())
}

func TestComplete(t *testing.T) {
	var (
		path     string
		captured map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"chosen_color\": "}, {"text": "\"Ruby\"}"}]}}]}`))
	}))
	defer srv.Close()

	reply, err := testProvider(srv, "").Complete(context.Background(), testRequest())
	require.NoError(t, err)
	require.Equal(t, `{"chosen_color": "Ruby"}`, reply)
	require.Equal(t, "/v1beta/models/"+DefaultModel+":generateContent", path)

	system := captured["systemInstruction"].(map[string]any)["parts"].([]any)
	require.Equal(t, "system text", system[0].(map[string]any)["text"])

	contents := captured["contents"].([]any)
	require.Len(t, contents, 1)
	user := contents[0].(map[string]any)
	require.Equal(t, "user", user["role"])
	parts := user["parts"].([]any)
	require.Len(t, parts, 2)
	require.Equal(t, "prompt text", parts[0].(map[string]any)["text"])

	blob := parts[1].(map[string]any)["inlineData"].(map[string]any)
	require.Equal(t, "image/jpeg", blob["mimeType"])
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff}), blob["data"])

	config := captured["generationConfig"].(map[string]any)
	require.EqualValues(t, 800, config["maxOutputTokens"])
}

func TestCompleteClassifiesErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		class  error
	}{
		{name: "bad key", status: http.StatusUnauthorized, class: providers.ErrAuth},
		{name: "forbidden", status: http.StatusForbidden, class: providers.ErrAuth},
		{name: "rate limited", status: http.StatusTooManyRequests, class: providers.ErrRateLimit},
		{name: "server error", status: http.StatusInternalServerError, class: providers.ErrService},
		{name: "unavailable", status: http.StatusServiceUnavailable, class: providers.ErrService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error": {"code": ` + strconv.Itoa(tt.status) + `, "message": "nope"}}`))
			}))
			defer srv.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			start := time.Now()
			_, err := testProvider(srv, "gemini-1.5-pro").Complete(ctx, testRequest())
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.class), err.Error())
			require.False(t, errors.Is(err, context.DeadlineExceeded), err.Error())
			require.Equal(t, int32(1), calls.Load(), "requests must not be retried")
			require.Less(t, time.Since(start), 5*time.Second)
		})
	}
}

func TestCompleteNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	_, err := testProvider(srv, "").Complete(context.Background(), testRequest())
	require.ErrorIs(t, err, providers.ErrEmptyReply)
}

func TestClassifyGRPCCodes(t *testing.T) {
	tests := []struct {
		code  codes.Code
		class error
	}{
		{code: codes.Unauthenticated, class: providers.ErrAuth},
		{code: codes.PermissionDenied, class: providers.ErrAuth},
		{code: codes.ResourceExhausted, class: providers.ErrRateLimit},
		{code: codes.Internal, class: providers.ErrService},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			apiErr, ok := apierror.FromError(status.Error(tt.code, "nope"))
			require.True(t, ok)
			require.ErrorIs(t, classify(apiErr), tt.class)
		})
	}
}

func TestClassifyPassesThroughPlainErrors(t *testing.T) {
	err := classify(context.DeadlineExceeded)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.False(t, errors.Is(err, providers.ErrAuth))
}
