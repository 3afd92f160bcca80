package openai

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/styleadvisor/styleadvisor/internal/providers"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gpt-4o-mini"

// OpenAI is a provider for OpenAI chat completions
type OpenAI struct {
	client sdk.Client
	model  string
}

// New returns a new OpenAI provider.
// The SDK's built-in retries are disabled: one analysis is one attempt.
func New(apiKey, baseURL, model string, opts ...option.RequestOption) *OpenAI {
	if model == "" {
		model = DefaultModel
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &OpenAI{
		client: sdk.NewClient(reqOpts...),
		model:  model,
	}
}

// Name implements providers.Provider
func (o *OpenAI) Name() string {
	return "openai"
}

// Complete sends the system instruction, the prompt and the inline image as one chat completion
func (o *OpenAI) Complete(ctx context.Context, req providers.Request) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, o.params(req))
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned from OpenAI", providers.ErrEmptyReply)
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAI) params(req providers.Request) sdk.ChatCompletionNewParams {
	return sdk.ChatCompletionNewParams{
		Model:     sdk.ChatModel(o.model),
		MaxTokens: sdk.Int(int64(req.MaxTokens)),
		Messages: []sdk.ChatCompletionMessageParamUnion{
			{
				OfSystem: &sdk.ChatCompletionSystemMessageParam{
					Content: sdk.ChatCompletionSystemMessageParamContentUnion{
						OfString: sdk.String(req.System),
					},
				},
			},
			{
				OfUser: &sdk.ChatCompletionUserMessageParam{
					Content: sdk.ChatCompletionUserMessageParamContentUnion{
						OfArrayOfContentParts: []sdk.ChatCompletionContentPartUnionParam{
							{OfText: &sdk.ChatCompletionContentPartTextParam{
								Text: req.Prompt,
							}},
							{OfImageURL: &sdk.ChatCompletionContentPartImageParam{
								ImageURL: sdk.ChatCompletionContentPartImageImageURLParam{
									URL:    req.DataURI(),
									Detail: "auto",
								},
							}},
						},
					},
				},
			},
		},
	}
}

func classify(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("openai request failed: %w", providers.StatusError(apiErr.StatusCode, apiErr.Message))
	}
	return fmt.Errorf("openai request failed: %w", err)
}
