package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
)

// ActionItem represents an actionable recommendation awaiting human
// approval. Items are seeded at startup and mutated only through the
// lifecycle engine; the lifecycle is one-way (an item never returns to
// PENDING).
type ActionItem struct {
	ID              string              `json:"id"`
	Type            types.ActionType    `json:"type"`
	Target          types.ActionTarget  `json:"target"`
	Channel         types.ActionChannel `json:"channel"`
	Recipients      []string            `json:"recipients"`
	MessageTemplate string              `json:"message_template"`
	MessageFinal    *string             `json:"message_final"`
	Status          types.ActionStatus  `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// Validate checks the structural invariants of an action item
func (a *ActionItem) Validate() error {
	if a.ID == "" {
		return goerr.New("action ID is required")
	}
	if !a.Type.IsValid() {
		return goerr.New("invalid action type", goerr.V("id", a.ID), goerr.V("type", a.Type))
	}
	if !a.Target.IsValid() {
		return goerr.New("invalid action target", goerr.V("id", a.ID), goerr.V("target", a.Target))
	}
	if !a.Channel.IsValid() {
		return goerr.New("invalid action channel", goerr.V("id", a.ID), goerr.V("channel", a.Channel))
	}
	if len(a.Recipients) == 0 {
		return goerr.New("action requires at least one recipient", goerr.V("id", a.ID))
	}
	for i, recipient := range a.Recipients {
		if recipient == "" {
			return goerr.New("empty recipient", goerr.V("id", a.ID), goerr.V("index", i))
		}
	}
	if a.MessageTemplate == "" {
		return goerr.New("action message template is required", goerr.V("id", a.ID))
	}
	if !a.Status.IsValid() {
		return goerr.New("invalid action status", goerr.V("id", a.ID), goerr.V("status", a.Status))
	}
	if a.Status == types.ActionStatusPending && a.MessageFinal != nil {
		return goerr.New("pending action must not have a final message", goerr.V("id", a.ID))
	}
	if a.UpdatedAt.Before(a.CreatedAt) {
		return goerr.New("updated_at must not precede created_at",
			goerr.V("id", a.ID),
			goerr.V("created_at", a.CreatedAt),
			goerr.V("updated_at", a.UpdatedAt),
		)
	}
	return nil
}
