package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
	"github.com/surgeguard-io/surgeguard/pkg/utils/logging"
)

// ActionUseCase is the lifecycle engine for action items: it enforces
// the legal transitions (PENDING → APPROVED/REJECTED) and drives the
// notification fan-out for approved actions.
type ActionUseCase struct {
	repo    interfaces.Repository
	gateway interfaces.NotificationGateway
}

func NewActionUseCase(repo interfaces.Repository, gateway interfaces.NotificationGateway) *ActionUseCase {
	return &ActionUseCase{
		repo:    repo,
		gateway: gateway,
	}
}

// Seed validates and installs the initial action collection
func (uc *ActionUseCase) Seed(ctx context.Context, items []*model.ActionItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return goerr.Wrap(err, "invalid seed action", goerr.V(ActionIDKey, item.ID))
		}
		if err := uc.repo.Action().Put(ctx, item); err != nil {
			return goerr.Wrap(err, "failed to seed action", goerr.V(ActionIDKey, item.ID))
		}
	}

	logging.From(ctx).Info("seeded action store", "count", len(items))
	return nil
}

// ListPending returns all actions awaiting a human decision
func (uc *ActionUseCase) ListPending(ctx context.Context) ([]*model.ActionItem, error) {
	items, err := uc.repo.Action().ListByStatus(ctx, types.ActionStatusPending)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pending actions")
	}
	return items, nil
}

// Approve transitions a PENDING action to APPROVED. The final message is
// the override when supplied and non-empty, otherwise the original
// template. The transition runs atomically in the store, so two racing
// approvals cannot both pass the PENDING guard.
func (uc *ActionUseCase) Approve(ctx context.Context, id string, messageOverride string) (*model.ActionItem, error) {
	updated, err := uc.repo.Action().Transition(ctx, id, func(current *model.ActionItem) (*model.ActionItem, error) {
		if current.Status != types.ActionStatusPending {
			return nil, goerr.Wrap(ErrActionNotPending, "cannot approve action",
				goerr.V(ActionIDKey, id), goerr.V("status", current.Status))
		}

		final := current.MessageTemplate
		if messageOverride != "" {
			final = messageOverride
		}

		current.MessageFinal = &final
		current.Status = types.ActionStatusApproved
		current.UpdatedAt = time.Now().UTC()
		return current, nil
	})
	if err != nil {
		if errors.Is(err, ErrActionNotPending) {
			return nil, err
		}
		return nil, goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
	}

	logging.From(ctx).Info("action approved",
		"action_id", updated.ID,
		"override", messageOverride != "",
	)

	return updated, nil
}

// Reject transitions a PENDING action to REJECTED. The reason is logged
// for audit purposes but not persisted on the entity.
func (uc *ActionUseCase) Reject(ctx context.Context, id string, reason string) (*model.ActionItem, error) {
	updated, err := uc.repo.Action().Transition(ctx, id, func(current *model.ActionItem) (*model.ActionItem, error) {
		if current.Status != types.ActionStatusPending {
			return nil, goerr.Wrap(ErrActionNotPending, "cannot reject action",
				goerr.V(ActionIDKey, id), goerr.V("status", current.Status))
		}

		current.Status = types.ActionStatusRejected
		current.UpdatedAt = time.Now().UTC()
		return current, nil
	})
	if err != nil {
		if errors.Is(err, ErrActionNotPending) {
			return nil, err
		}
		return nil, goerr.Wrap(ErrActionNotFound, "action not found", goerr.V(ActionIDKey, id))
	}

	logging.From(ctx).Info("action rejected",
		"action_id", updated.ID,
		"reason", reason,
	)

	return updated, nil
}

// ApproveAndNotify approves the action, then sends one notification per
// recipient in list order. Attempts are independent and best-effort: a
// failed delivery neither aborts later attempts nor alters the stored
// status, which remains APPROVED. The outcomes are returned for
// observability but not written back into the store.
func (uc *ActionUseCase) ApproveAndNotify(ctx context.Context, id string, messageOverride string) (*model.ActionItem, []*model.NotificationOutcome, error) {
	updated, err := uc.Approve(ctx, id, messageOverride)
	if err != nil {
		return nil, nil, err
	}

	body := updated.MessageTemplate
	if updated.MessageFinal != nil {
		body = *updated.MessageFinal
	}

	outcomes := make([]*model.NotificationOutcome, 0, len(updated.Recipients))
	var failed int
	for _, recipient := range updated.Recipients {
		outcome := uc.gateway.Send(ctx, recipient, body)
		if outcome.Status == types.DeliveryStatusFailed {
			failed++
		}
		outcomes = append(outcomes, outcome)
	}

	logging.From(ctx).Info("notification fan-out completed",
		"action_id", updated.ID,
		"recipients", len(updated.Recipients),
		"failed", failed,
	)

	return updated, outcomes, nil
}
