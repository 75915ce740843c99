package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/surgeguard-io/surgeguard/pkg/usecase"
	"github.com/surgeguard-io/surgeguard/pkg/utils/errutil"
)

type actionApproveRequest struct {
	MessageOverride string `json:"message_override"`
}

type actionRejectRequest struct {
	Reason string `json:"reason"`
}

// listPendingActionsHandler returns all actions currently in PENDING status
func listPendingActionsHandler(uc *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := uc.ListPending(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, items)
	}
}

// approveActionHandler approves an action, optionally overriding the
// final message text, and attempts to notify all recipients. Delivery
// outcomes do not affect the response status: the action is APPROVED
// once the transition commits.
func approveActionHandler(uc *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actionID := chi.URLParam(r, "actionID")

		var req actionApproveRequest
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		updated, _, err := uc.ApproveAndNotify(ctx, actionID, req.MessageOverride)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, updated)
	}
}

// rejectActionHandler rejects an action. The reason is accepted for
// audit logging but not stored.
func rejectActionHandler(uc *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actionID := chi.URLParam(r, "actionID")

		var req actionRejectRequest
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		updated, err := uc.Reject(ctx, actionID, req.Reason)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, updated)
	}
}
