package notify

import (
	"context"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

// DefaultSendTimeout bounds a single Messages API call
const DefaultSendTimeout = 10 * time.Second

// whatsappPrefix is the Twilio addressing scheme for WhatsApp endpoints
const whatsappPrefix = "whatsapp:"

type twilioGateway struct {
	client     *twilio.RestClient
	fromNumber string
	whatsapp   bool
}

// Option is a functional option for the Twilio gateway
type Option func(*twilioGateway)

// WithWhatsApp addresses messages through the WhatsApp channel instead
// of plain SMS
func WithWhatsApp() Option {
	return func(g *twilioGateway) {
		g.whatsapp = true
	}
}

// NewTwilio creates a live gateway backed by the Twilio Messages API.
// Each Send issues exactly one attempt bounded by DefaultSendTimeout.
func NewTwilio(accountSID, authToken, fromNumber string, opts ...Option) interfaces.NotificationGateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	client.SetTimeout(DefaultSendTimeout)

	g := &twilioGateway{
		client:     client,
		fromNumber: fromNumber,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Send issues one Messages API call. Any failure (network error,
// non-2xx, timeout, malformed response) is folded into a FAILED outcome
// and never returned as an error.
func (g *twilioGateway) Send(ctx context.Context, recipient, body string) *model.NotificationOutcome {
	from := g.fromNumber
	to := recipient
	if g.whatsapp {
		from = whatsappPrefix + from
		to = whatsappPrefix + to
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)

	msg, err := g.client.Api.CreateMessage(params)
	if err != nil {
		logging.From(ctx).Warn("notification send failed",
			"recipient", recipient,
			"error", err.Error(),
		)
		return &model.NotificationOutcome{
			ProviderRef: nil,
			Status:      types.DeliveryStatusFailed,
		}
	}

	// Providers report lowercase statuses such as "queued" or "sent";
	// anything unrecognized counts as SENT per the provider contract.
	status := types.DeliveryStatusSent
	if msg.Status != nil {
		if parsed := types.DeliveryStatus(strings.ToUpper(*msg.Status)); parsed.IsValid() {
			status = parsed
		}
	}

	return &model.NotificationOutcome{
		ProviderRef: msg.Sid,
		Status:      status,
	}
}
