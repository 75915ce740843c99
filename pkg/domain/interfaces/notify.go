package interfaces

import (
	"context"

	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
)

// NotificationGateway delivers one message to one recipient through an
// external channel. Exactly one attempt per call, no retry. Transport
// failures are never surfaced as errors; they are folded into the
// returned outcome as DeliveryStatusFailed.
type NotificationGateway interface {
	Send(ctx context.Context, recipient, body string) *model.NotificationOutcome
}
