package advisory

import (
	"context"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
)

// MockDraftPrefix marks deterministic offline drafts. The mock output is
// exactly this prefix followed by the original prompt, unchanged.
const MockDraftPrefix = "[MOCK DRAFT] "

type mockGenerator struct{}

// NewMock creates a generator that returns a deterministic draft without
// contacting any provider. Selected when the dry-run flag is set or the
// API key is absent.
func NewMock() interfaces.DraftGenerator {
	return &mockGenerator{}
}

func (g *mockGenerator) Generate(ctx context.Context, prompt string, contextData map[string]any) (string, error) {
	return MockDraftPrefix + prompt, nil
}
