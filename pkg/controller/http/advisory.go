package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/surgeguard-io/surgeguard/pkg/usecase"
	"github.com/surgeguard-io/surgeguard/pkg/utils/errutil"
)

type advisoryGenerateRequest struct {
	Prompt  string         `json:"prompt"`
	Context map[string]any `json:"context"`
}

type advisoryDraftResponse struct {
	Draft string `json:"draft"`
}

// generateAdvisoryHandler produces an advisory draft for the given
// prompt and optional structured context
func generateAdvisoryHandler(uc *usecase.AdvisoryUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req advisoryGenerateRequest
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}
		if req.Prompt == "" {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(usecase.ErrEmptyPrompt, "invalid request"), http.StatusBadRequest)
			return
		}

		draft, err := uc.GenerateDraft(ctx, req.Prompt, req.Context)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, advisoryDraftResponse{Draft: draft})
	}
}
