package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
)

// AdvisoryUseCase produces advisory drafts for human review
type AdvisoryUseCase struct {
	generator interfaces.DraftGenerator
}

func NewAdvisoryUseCase(generator interfaces.DraftGenerator) *AdvisoryUseCase {
	return &AdvisoryUseCase{
		generator: generator,
	}
}

// GenerateDraft produces advisory text for the given prompt and optional
// structured context
func (uc *AdvisoryUseCase) GenerateDraft(ctx context.Context, prompt string, contextData map[string]any) (string, error) {
	if prompt == "" {
		return "", goerr.Wrap(ErrEmptyPrompt, "cannot generate advisory draft")
	}

	draft, err := uc.generator.Generate(ctx, prompt, contextData)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate advisory draft")
	}

	return draft, nil
}
