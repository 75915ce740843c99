package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
	"github.com/surgeguard-io/surgeguard/pkg/domain/types"
	"github.com/surgeguard-io/surgeguard/pkg/repository/memory"
	"github.com/surgeguard-io/surgeguard/pkg/usecase"
)

type gatewayMock struct {
	mu    sync.Mutex
	calls []gatewayCall
	send  func(ctx context.Context, recipient, body string) *model.NotificationOutcome
}

type gatewayCall struct {
	recipient string
	body      string
}

func (m *gatewayMock) Send(ctx context.Context, recipient, body string) *model.NotificationOutcome {
	m.mu.Lock()
	m.calls = append(m.calls, gatewayCall{recipient: recipient, body: body})
	m.mu.Unlock()

	if m.send != nil {
		return m.send(ctx, recipient, body)
	}
	return &model.NotificationOutcome{Status: types.DeliveryStatusQueued}
}

func seedAction(t *testing.T, uc *usecase.UseCases, id string) *model.ActionItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	item := &model.ActionItem{
		ID:              id,
		Type:            types.ActionTypeAdvisory,
		Target:          types.ActionTargetPublic,
		Channel:         types.ActionChannelSMS,
		Recipients:      []string{"+919800020001", "+919800020002"},
		MessageTemplate: "Heavy rainfall expected. Avoid waterlogged areas.",
		Status:          types.ActionStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	gt.NoError(t, uc.Action.Seed(context.Background(), []*model.ActionItem{item})).Required()
	return item
}

func TestActionApprove(t *testing.T) {
	t.Run("approve without override uses the template", func(t *testing.T) {
		uc := usecase.New(memory.New())
		seeded := seedAction(t, uc, "act-1")

		updated, err := uc.Action.Approve(context.Background(), "act-1", "")
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.ActionStatusApproved)
		gt.Value(t, updated.MessageFinal).NotNil()
		gt.Value(t, *updated.MessageFinal).Equal(seeded.MessageTemplate)
		gt.Bool(t, updated.UpdatedAt.Before(seeded.CreatedAt)).False()
	})

	t.Run("approve with override uses the override", func(t *testing.T) {
		uc := usecase.New(memory.New())
		seedAction(t, uc, "act-1")

		updated, err := uc.Action.Approve(context.Background(), "act-1", "Shelters open at 6pm.")
		gt.NoError(t, err).Required()

		gt.Value(t, updated.MessageFinal).NotNil()
		gt.Value(t, *updated.MessageFinal).Equal("Shelters open at 6pm.")
	})

	t.Run("approve unknown action returns ErrActionNotFound", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Action.Approve(context.Background(), "no-such-id", "")
		gt.Error(t, err).Is(usecase.ErrActionNotFound)
	})

	t.Run("approving twice returns ErrActionNotPending", func(t *testing.T) {
		uc := usecase.New(memory.New())
		seedAction(t, uc, "act-1")

		_, err := uc.Action.Approve(context.Background(), "act-1", "")
		gt.NoError(t, err).Required()

		_, err = uc.Action.Approve(context.Background(), "act-1", "second attempt")
		gt.Error(t, err).Is(usecase.ErrActionNotPending)
	})

	t.Run("approved action leaves the pending list", func(t *testing.T) {
		uc := usecase.New(memory.New())
		seedAction(t, uc, "act-1")
		seedAction(t, uc, "act-2")

		_, err := uc.Action.Approve(context.Background(), "act-1", "")
		gt.NoError(t, err).Required()

		pending, err := uc.Action.ListPending(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, pending).Length(1)
		gt.Value(t, pending[0].ID).Equal("act-2")
	})
}

func TestActionReject(t *testing.T) {
	t.Run("reject keeps message final unset", func(t *testing.T) {
		uc := usecase.New(memory.New())
		seedAction(t, uc, "act-1")

		updated, err := uc.Action.Reject(context.Background(), "act-1", "duplicate of act-7")
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.ActionStatusRejected)
		gt.Value(t, updated.MessageFinal).Nil()
	})

	t.Run("reject unknown action returns ErrActionNotFound", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Action.Reject(context.Background(), "no-such-id", "")
		gt.Error(t, err).Is(usecase.ErrActionNotFound)
	})

	t.Run("rejecting an approved action returns ErrActionNotPending", func(t *testing.T) {
		uc := usecase.New(memory.New())
		seedAction(t, uc, "act-1")

		_, err := uc.Action.Approve(context.Background(), "act-1", "")
		gt.NoError(t, err).Required()

		_, err = uc.Action.Reject(context.Background(), "act-1", "too late")
		gt.Error(t, err).Is(usecase.ErrActionNotPending)
	})
}

func TestActionApproveAndNotify(t *testing.T) {
	t.Run("sends one notification per recipient in order", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := usecase.New(memory.New(), usecase.WithGateway(gateway))
		seedAction(t, uc, "act-1")

		updated, outcomes, err := uc.Action.ApproveAndNotify(context.Background(), "act-1", "")
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.ActionStatusApproved)
		gt.Array(t, outcomes).Length(2)
		gt.Array(t, gateway.calls).Length(2)
		gt.Value(t, gateway.calls[0].recipient).Equal("+919800020001")
		gt.Value(t, gateway.calls[1].recipient).Equal("+919800020002")
		gt.Value(t, gateway.calls[0].body).Equal("Heavy rainfall expected. Avoid waterlogged areas.")
	})

	t.Run("notifies with the overridden message", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := usecase.New(memory.New(), usecase.WithGateway(gateway))
		seedAction(t, uc, "act-1")

		_, _, err := uc.Action.ApproveAndNotify(context.Background(), "act-1", "Shelters open at 6pm.")
		gt.NoError(t, err).Required()

		gt.Array(t, gateway.calls).Length(2)
		gt.Value(t, gateway.calls[0].body).Equal("Shelters open at 6pm.")
	})

	t.Run("a failed delivery does not abort later recipients", func(t *testing.T) {
		gateway := &gatewayMock{}
		gateway.send = func(ctx context.Context, recipient, body string) *model.NotificationOutcome {
			if recipient == "+919800020001" {
				return &model.NotificationOutcome{Status: types.DeliveryStatusFailed}
			}
			return &model.NotificationOutcome{Status: types.DeliveryStatusQueued}
		}
		uc := usecase.New(memory.New(), usecase.WithGateway(gateway))
		seedAction(t, uc, "act-1")

		updated, outcomes, err := uc.Action.ApproveAndNotify(context.Background(), "act-1", "")
		gt.NoError(t, err).Required()

		gt.Array(t, outcomes).Length(2)
		gt.Value(t, outcomes[0].Status).Equal(types.DeliveryStatusFailed)
		gt.Value(t, outcomes[1].Status).Equal(types.DeliveryStatusQueued)

		// Delivery failure never rolls back the approval
		gt.Value(t, updated.Status).Equal(types.ActionStatusApproved)
	})

	t.Run("no notification is sent when approval fails", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := usecase.New(memory.New(), usecase.WithGateway(gateway))

		_, _, err := uc.Action.ApproveAndNotify(context.Background(), "no-such-id", "")
		gt.Error(t, err).Is(usecase.ErrActionNotFound)
		gt.Array(t, gateway.calls).Length(0)
	})

	t.Run("racing approvals notify exactly once", func(t *testing.T) {
		gateway := &gatewayMock{}
		uc := usecase.New(memory.New(), usecase.WithGateway(gateway))
		seedAction(t, uc, "act-1")

		const workers = 8
		var wg sync.WaitGroup
		errs := make([]error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, _, errs[n] = uc.Action.ApproveAndNotify(context.Background(), "act-1", "")
			}(i)
		}
		wg.Wait()

		var succeeded int
		for _, err := range errs {
			if err == nil {
				succeeded++
			}
		}
		gt.Number(t, succeeded).Equal(1)
		gt.Array(t, gateway.calls).Length(2)
	})
}

func TestActionSeed(t *testing.T) {
	t.Run("invalid seed item is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())

		now := time.Now().UTC()
		err := uc.Action.Seed(context.Background(), []*model.ActionItem{
			{
				ID:        "act-bad",
				Type:      types.ActionTypeStaffing,
				Target:    types.ActionTargetStaff,
				Channel:   types.ActionChannelSMS,
				Status:    types.ActionStatusPending,
				CreatedAt: now,
				UpdatedAt: now,
				// No recipients and no template
			},
		})
		gt.Error(t, err)
	})
}
