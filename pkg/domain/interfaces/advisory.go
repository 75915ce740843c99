package interfaces

import "context"

// DraftGenerator produces advisory text for a free-form prompt plus
// optional structured context. Live implementations absorb provider
// failures into a deterministic fallback draft instead of returning an
// error.
type DraftGenerator interface {
	Generate(ctx context.Context, prompt string, contextData map[string]any) (string, error)
}
