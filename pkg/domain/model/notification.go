package model

import "github.com/surgeguard-io/surgeguard/pkg/domain/types"

// NotificationOutcome is the result of one delivery attempt for one
// recipient. Outcomes are transient: they are reported to the caller of
// the approval flow but never persisted onto the ActionItem.
type NotificationOutcome struct {
	// ProviderRef is an opaque identifier assigned by the external
	// provider for a queued/sent message. Nil in dry-run mode and on
	// failed attempts.
	ProviderRef *string              `json:"provider_ref"`
	Status      types.DeliveryStatus `json:"status"`
}
