package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/service/notify"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

// Twilio holds configuration for the notification provider
type Twilio struct {
	accountSID string
	authToken  string
	fromNumber string
	dryRun     bool
	whatsapp   bool
}

// Flags returns CLI flags for Twilio configuration
func (t *Twilio) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "twilio-account-sid",
			Usage:       "Twilio account SID",
			Category:    "Notification",
			Sources:     cli.EnvVars("TWILIO_ACCOUNT_SID"),
			Destination: &t.accountSID,
		},
		&cli.StringFlag{
			Name:        "twilio-auth-token",
			Usage:       "Twilio auth token",
			Category:    "Notification",
			Sources:     cli.EnvVars("TWILIO_AUTH_TOKEN"),
			Destination: &t.authToken,
		},
		&cli.StringFlag{
			Name:        "twilio-from-number",
			Usage:       "Sender phone number for outbound notifications",
			Category:    "Notification",
			Sources:     cli.EnvVars("TWILIO_FROM_NUMBER"),
			Destination: &t.fromNumber,
		},
		&cli.BoolFlag{
			Name:        "twilio-dry-run",
			Usage:       "Do not contact the provider; report all messages as QUEUED",
			Category:    "Notification",
			Value:       true,
			Sources:     cli.EnvVars("TWILIO_DRY_RUN"),
			Destination: &t.dryRun,
		},
		&cli.BoolFlag{
			Name:        "twilio-whatsapp",
			Usage:       "Address live messages through the WhatsApp channel",
			Category:    "Notification",
			Sources:     cli.EnvVars("TWILIO_WHATSAPP"),
			Destination: &t.whatsapp,
		},
	}
}

// LogAttrs returns log attributes for the Twilio configuration.
// Credential values are intentionally reduced to presence booleans.
func (t *Twilio) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("dry_run", t.dryRun),
		slog.Bool("has_account_sid", t.accountSID != ""),
		slog.Bool("has_auth_token", t.authToken != ""),
		slog.Bool("has_from_number", t.fromNumber != ""),
		slog.Bool("whatsapp", t.whatsapp),
	}
}

// Configure selects the notification gateway. Dry-run mode or missing
// credentials yield the offline gateway.
func (t *Twilio) Configure() interfaces.NotificationGateway {
	if t.dryRun || t.accountSID == "" || t.authToken == "" || t.fromNumber == "" {
		logging.Default().Info("Notification gateway running in dry-run mode")
		return notify.NewDryRun()
	}

	var opts []notify.Option
	if t.whatsapp {
		opts = append(opts, notify.WithWhatsApp())
	}

	logging.Default().Info("Notification gateway running in live mode")
	return notify.NewTwilio(t.accountSID, t.authToken, t.fromNumber, opts...)
}
