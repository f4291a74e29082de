package textgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"communitysite/internal/domain"
)

// GeminiConfig holds configuration for the Gemini text generator.
type GeminiConfig struct {
	APIKey   string
	Model    string // e.g. gemini-2.5-flash
	Endpoint string // optional API root override
	Logger   *slog.Logger
}

// GeminiClient generates text through the generativelanguage v1beta API.
type GeminiClient struct {
	service *generativelanguage.Service
	model   string
	logger  *slog.Logger
}

// NewGemini creates a TextGenerator backed by Gemini. Without an API key it returns a
// generator that fails every request with domain.ErrGenerationFailed.
func NewGemini(ctx context.Context, config GeminiConfig) (domain.TextGenerator, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; text generation is disabled")
		return unconfigured{}, nil
	}
	opts := []option.ClientOption{option.WithAPIKey(config.APIKey)}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}
	service, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative language service: %w", err)
	}
	model := config.Model
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}
	return &GeminiClient{service: service, model: model, logger: logger}, nil
}

// Generate sends prompt as a single user turn and returns the concatenated text of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}
	resp, err := c.service.Models.GenerateContent(c.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	text := firstCandidateText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", domain.ErrGenerationFailed)
	}
	c.logger.Debug("text generated", "model", c.model, "chars", len(text))
	return text, nil
}

func firstCandidateText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

type unconfigured struct{}

func (unconfigured) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %w", domain.ErrGenerationFailed, errors.New("no api key configured"))
}
