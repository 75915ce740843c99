package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
)

type actionRepository struct {
	mu    sync.RWMutex
	items map[string]*model.ActionItem
}

func newActionRepository() *actionRepository {
	return &actionRepository{
		items: make(map[string]*model.ActionItem),
	}
}

// copyAction creates a deep copy of an action item
func copyAction(a *model.ActionItem) *model.ActionItem {
	recipients := make([]string, len(a.Recipients))
	copy(recipients, a.Recipients)

	copied := &model.ActionItem{
		ID:              a.ID,
		Type:            a.Type,
		Target:          a.Target,
		Channel:         a.Channel,
		Recipients:      recipients,
		MessageTemplate: a.MessageTemplate,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.MessageFinal != nil {
		final := *a.MessageFinal
		copied.MessageFinal = &final
	}
	return copied
}

func (r *actionRepository) ListByStatus(ctx context.Context, status types.ActionStatus) ([]*model.ActionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.ActionItem, 0)
	for _, item := range r.items {
		if item.Status == status {
			result = append(result, copyAction(item))
		}
	}

	return result, nil
}

func (r *actionRepository) Get(ctx context.Context, id string) (*model.ActionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
	}

	return copyAction(item), nil
}

func (r *actionRepository) Put(ctx context.Context, item *model.ActionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return goerr.Wrap(ErrAlreadyExists, "duplicate action ID", goerr.V("id", item.ID))
	}

	r.items[item.ID] = copyAction(item)
	return nil
}

// Transition applies fn under the write lock so concurrent transitions
// on the same ID are serialized: no lost update, and fn always observes
// the latest committed state. fn must not perform blocking calls.
func (r *actionRepository) Transition(ctx context.Context, id string, fn func(current *model.ActionItem) (*model.ActionItem, error)) (*model.ActionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
	}

	updated, err := fn(copyAction(current))
	if err != nil {
		return nil, err
	}
	if updated.ID != id {
		return nil, goerr.New("transition must not change action ID",
			goerr.V("id", id), goerr.V("updated_id", updated.ID))
	}

	r.items[id] = copyAction(updated)
	return copyAction(updated), nil
}
