package advisory_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/surgeguard-io/surgeguard/pkg/service/advisory"
)

func TestMockGenerator(t *testing.T) {
	generator := advisory.NewMock()

	t.Run("draft is the prefix plus the prompt", func(t *testing.T) {
		draft, err := generator.Generate(context.Background(), "Festival surge expected in Ward X", nil)
		gt.NoError(t, err).Required()
		gt.Value(t, draft).Equal("[MOCK DRAFT] Festival surge expected in Ward X")
	})

	t.Run("context data does not alter the draft", func(t *testing.T) {
		draft, err := generator.Generate(context.Background(), "same prompt", map[string]any{"ward": "X"})
		gt.NoError(t, err).Required()
		gt.Value(t, draft).Equal(advisory.MockDraftPrefix + "same prompt")
	})

	t.Run("repeated calls are deterministic", func(t *testing.T) {
		first, err := generator.Generate(context.Background(), "p", nil)
		gt.NoError(t, err).Required()
		second, err := generator.Generate(context.Background(), "p", nil)
		gt.NoError(t, err).Required()
		gt.Value(t, first).Equal(second)
	})
}
