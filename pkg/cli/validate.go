package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/surgeguard-io/surgeguard/pkg/cli/config"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var seedCfg config.Seed

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate seed data files without starting the server",
		Flags: seedCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			loader := seedCfg.Configure()
			logger := logging.Default()

			actions, err := loader.Actions(ctx)
			if err != nil {
				return goerr.Wrap(err, "action seed data is invalid")
			}
			logger.Info("action seed data is valid", "count", len(actions))

			hospitals, err := loader.Hospitals(ctx)
			if err != nil {
				return goerr.Wrap(err, "hospital seed data is invalid")
			}
			logger.Info("hospital seed data is valid", "count", len(hospitals))

			if _, err := loader.KPI(ctx); err != nil {
				return goerr.Wrap(err, "KPI seed data is invalid")
			}
			logger.Info("KPI seed data is valid")

			logger.Info("all seed data is valid")
			return nil
		},
	}
}
