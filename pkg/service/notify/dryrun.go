package notify

import (
	"context"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

// dryRunGateway performs no network calls and reports every message as
// queued. Selected when the dry-run flag is set or provider credentials
// are absent.
type dryRunGateway struct{}

// NewDryRun creates a gateway that deterministically queues messages
// without contacting any provider
func NewDryRun() interfaces.NotificationGateway {
	return &dryRunGateway{}
}

func (g *dryRunGateway) Send(ctx context.Context, recipient, body string) *model.NotificationOutcome {
	logging.From(ctx).Info("dry-run notification",
		"recipient", recipient,
		"body_bytes", len(body),
	)

	return &model.NotificationOutcome{
		ProviderRef: nil,
		Status:      types.DeliveryStatusQueued,
	}
}
