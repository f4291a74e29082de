package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"communitysite/internal/domain"
)

type draftService struct {
	generator      domain.TextGenerator
	contextTimeout time.Duration
}

// NewDraftService proxies admin prompts to the text generator.
func NewDraftService(generator domain.TextGenerator, timeout time.Duration) domain.DraftService {
	return &draftService{generator: generator, contextTimeout: timeout}
}

func (s *draftService) Draft(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is required", domain.ErrInvalidInput)
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.generator.Generate(ctx, prompt)
}
