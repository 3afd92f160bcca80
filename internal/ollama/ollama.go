package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/styleadvisor/styleadvisor/internal/providers"
)

// DefaultModel is used when no model is configured
const DefaultModel = "llava"

// Ollama is a provider for a local Ollama server
type Ollama struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// New returns a new Ollama provider
func New(baseURL, model string) *Ollama {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = DefaultModel
	}
	return &Ollama{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{},
	}
}

// Name implements providers.Provider
func (o *Ollama) Name() string {
	return "ollama"
}

type chatMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

// Complete posts the request to /api/chat with the image attached to the user message
func (o *Ollama) Complete(ctx context.Context, req providers.Request) (string, error) {
	requestBody, err := json.Marshal(map[string]interface{}{
		"model": o.model,
		"messages": []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt, Images: []string{req.Base64Image()}},
		},
		"stream": false,
		"options": map[string]interface{}{
			"num_predict": req.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/api/chat", bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama request failed: %w", providers.StatusError(resp.StatusCode, string(body)))
	}

	var response struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("%w: failed to decode response body: %v", providers.ErrService, err)
	}

	return response.Message.Content, nil
}
