package interfaces

import (
	"context"

	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
)

// ActionRepository is the authoritative keyed collection of action items.
// Implementations must serialize Transition calls for the same ID so no
// state transition is lost, and must never let callers alias stored
// memory (reads and writes are deep-copied).
type ActionRepository interface {
	// ListByStatus returns all items currently in the given status, in
	// store-native order.
	ListByStatus(ctx context.Context, status types.ActionStatus) ([]*model.ActionItem, error)

	// Get returns the item for the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.ActionItem, error)

	// Put installs a new item. The ID must not already exist.
	Put(ctx context.Context, item *model.ActionItem) error

	// Transition atomically applies fn to the current value of the item
	// and installs the result. fn receives a copy and must not block;
	// an error from fn aborts the transition and leaves the store
	// unchanged.
	Transition(ctx context.Context, id string, fn func(current *model.ActionItem) (*model.ActionItem, error)) (*model.ActionItem, error)
}
