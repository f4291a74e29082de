package domain

import "context"

// TextGenerator is the hosted language model used to draft copy in the admin dashboard.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// DraftService validates prompts and proxies them to the TextGenerator.
type DraftService interface {
	Draft(ctx context.Context, prompt string) (string, error)
}
