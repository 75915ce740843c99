package advisory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m-mizutani/gollem"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

const systemPrompt = "You are a public health advisory generator. Respond with a clear, concise advisory message."

// DefaultGenerateTimeout bounds a single generation call
const DefaultGenerateTimeout = 20 * time.Second

type llmGenerator struct {
	client  gollem.LLMClient
	timeout time.Duration
}

// LLMOption is a functional option for the LLM-backed generator
type LLMOption func(*llmGenerator)

// WithTimeout overrides the per-call generation timeout
func WithTimeout(timeout time.Duration) LLMOption {
	return func(g *llmGenerator) {
		g.timeout = timeout
	}
}

// NewLLM creates a generator backed by an external LLM. Provider and
// parse failures fall back to the deterministic mock draft; Generate
// never returns an error for transport problems.
func NewLLM(client gollem.LLMClient, opts ...LLMOption) interfaces.DraftGenerator {
	g := &llmGenerator{
		client:  client,
		timeout: DefaultGenerateTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *llmGenerator) Generate(ctx context.Context, prompt string, contextData map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	session, err := g.client.NewSession(ctx,
		gollem.WithSessionSystemPrompt(g.buildSystemPrompt(ctx, contextData)),
	)
	if err != nil {
		logging.From(ctx).Warn("failed to create LLM session, falling back to mock draft",
			"error", err.Error(),
		)
		return MockDraftPrefix + prompt, nil
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		logging.From(ctx).Warn("draft generation failed, falling back to mock draft",
			"error", err.Error(),
		)
		return MockDraftPrefix + prompt, nil
	}

	if len(resp.Texts) == 0 || resp.Texts[0] == "" {
		logging.From(ctx).Warn("draft generation returned empty response, falling back to mock draft")
		return MockDraftPrefix + prompt, nil
	}

	return resp.Texts[0], nil
}

func (g *llmGenerator) buildSystemPrompt(ctx context.Context, contextData map[string]any) string {
	if len(contextData) == 0 {
		return systemPrompt
	}

	encoded, err := json.Marshal(contextData)
	if err != nil {
		logging.From(ctx).Warn("failed to serialize advisory context, generating without it",
			"error", err.Error(),
		)
		return systemPrompt
	}

	return systemPrompt + "\nContext: " + string(encoded)
}
