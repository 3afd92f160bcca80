package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gl "cloud.google.com/go/ai/generativelanguage/apiv1beta"
	pb "cloud.google.com/go/ai/generativelanguage/apiv1beta/generativelanguagepb"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/styleadvisor/styleadvisor/internal/providers"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/proto"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-1.5-flash"

// Gemini is a provider for Google Gemini
type Gemini struct {
	apiKey string
	model  string
	opts   []option.ClientOption
}

// New returns a new Gemini provider
func New(apiKey, model string, opts ...option.ClientOption) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{apiKey: apiKey, model: model, opts: opts}
}

// Name implements providers.Provider
func (g *Gemini) Name() string {
	return "gemini"
}

// newClient builds the REST client with the default GenerateContent retry removed:
// one analysis is one attempt.
func (g *Gemini) newClient(ctx context.Context) (*gl.GenerativeClient, error) {
	opts := append([]option.ClientOption{option.WithAPIKey(g.apiKey)}, g.opts...)
	client, err := gl.NewGenerativeRESTClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	client.CallOptions.GenerateContent = nil
	return client, nil
}

// Complete sends the prompt and the inline image with the system instruction attached to the model
func (g *Gemini) Complete(ctx context.Context, req providers.Request) (string, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	resp, err := client.GenerateContent(ctx, g.request(req))
	if err != nil {
		return "", classify(err)
	}

	if len(resp.GetCandidates()) == 0 {
		return "", fmt.Errorf("%w: no candidates returned from Gemini", providers.ErrEmptyReply)
	}

	parts := resp.GetCandidates()[0].GetContent().GetParts()
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: empty content returned from Gemini", providers.ErrEmptyReply)
	}

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(part.GetText())
	}
	return sb.String(), nil
}

func (g *Gemini) request(req providers.Request) *pb.GenerateContentRequest {
	return &pb.GenerateContentRequest{
		Model: "models/" + g.model,
		SystemInstruction: &pb.Content{
			Parts: []*pb.Part{{Data: &pb.Part_Text{Text: req.System}}},
		},
		Contents: []*pb.Content{{
			Role: "user",
			Parts: []*pb.Part{
				{Data: &pb.Part_Text{Text: req.Prompt}},
				{Data: &pb.Part_InlineData{InlineData: &pb.Blob{MimeType: mimeType(req.MIMEType), Data: req.Image}}},
			},
		}},
		GenerationConfig: &pb.GenerationConfig{
			MaxOutputTokens: proto.Int32(int32(req.MaxTokens)),
		},
	}
}

func mimeType(m string) string {
	if m == "" {
		return "image/jpeg"
	}
	return m
}

func classify(err error) error {
	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("failed to generate content: %w", err)
	}

	status := apiErr.HTTPCode()
	if st := apiErr.GRPCStatus(); st != nil {
		switch st.Code() {
		case codes.Unauthenticated:
			status = 401
		case codes.PermissionDenied:
			status = 403
		case codes.ResourceExhausted:
			status = 429
		}
	}

	detail := apiErr.Reason()
	if detail == "" {
		detail = apiErr.Error()
	}
	return fmt.Errorf("failed to generate content: %w", providers.StatusError(status, detail))
}
