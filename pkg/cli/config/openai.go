package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/service/advisory"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

// OpenAI holds configuration for the text-generation provider
type OpenAI struct {
	apiKey string
	model  string
	dryRun bool
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Category:    "Advisory",
			Sources:     cli.EnvVars("OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI model for advisory drafts",
			Category:    "Advisory",
			Value:       "gpt-4o-mini",
			Sources:     cli.EnvVars("OPENAI_MODEL"),
			Destination: &o.model,
		},
		&cli.BoolFlag{
			Name:        "openai-dry-run",
			Usage:       "Do not contact the provider; return deterministic mock drafts",
			Category:    "Advisory",
			Value:       true,
			Sources:     cli.EnvVars("OPENAI_DRY_RUN"),
			Destination: &o.dryRun,
		},
	}
}

// LogAttrs returns log attributes for the OpenAI configuration
func (o *OpenAI) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("dry_run", o.dryRun),
		slog.Bool("has_api_key", o.apiKey != ""),
		slog.String("model", o.model),
	}
}

// Configure selects the draft generator. Dry-run mode or a missing API
// key yield the deterministic mock generator.
func (o *OpenAI) Configure(ctx context.Context) (interfaces.DraftGenerator, error) {
	if o.dryRun || o.apiKey == "" {
		logging.Default().Info("Advisory generator running in dry-run mode")
		return advisory.NewMock(), nil
	}

	client, err := openai.New(ctx, o.apiKey, openai.WithModel(o.model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client")
	}

	logging.Default().Info("Advisory generator running in live mode", "model", o.model)
	return advisory.NewLLM(client), nil
}
