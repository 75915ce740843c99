package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/surgeguard-io/surgeguard/pkg/cli/config"
	httpctrl "github.com/surgeguard-io/surgeguard/pkg/controller/http"
	"github.com/surgeguard-io/surgeguard/pkg/repository/memory"
	"github.com/surgeguard-io/surgeguard/pkg/usecase"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var environment string
	var seedCfg config.Seed
	var twilioCfg config.Twilio
	var openaiCfg config.OpenAI

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8000",
			Sources:     cli.EnvVars("SURGEGUARD_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "environment",
			Usage:       "Deployment environment label (informational)",
			Value:       "development",
			Sources:     cli.EnvVars("ENVIRONMENT"),
			Destination: &environment,
		},
	}

	// Add shared config flags
	flags = append(flags, seedCfg.Flags()...)
	flags = append(flags, twilioCfg.Flags()...)
	flags = append(flags, openaiCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("Configuring surgeguard",
				"environment", environment,
				"notification", slog.GroupValue(twilioCfg.LogAttrs()...),
				"advisory", slog.GroupValue(openaiCfg.LogAttrs()...),
			)

			loader := seedCfg.Configure()

			// Seed the action store from the static collection. A missing
			// or malformed collection is fatal for startup.
			repo := memory.New()
			gateway := twilioCfg.Configure()
			generator, err := openaiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure draft generator")
			}

			uc := usecase.New(repo,
				usecase.WithGateway(gateway),
				usecase.WithGenerator(generator),
				usecase.WithDataset(loader),
			)

			actions, err := loader.Actions(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load action seed data")
			}
			if err := uc.Action.Seed(ctx, actions); err != nil {
				return goerr.Wrap(err, "failed to seed action store")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
