package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/surgeguard-io/surgeguard/pkg/service/dataset"
	"github.com/surgeguard-io/surgeguard/pkg/usecase"
	"github.com/surgeguard-io/surgeguard/pkg/utils/errutil"
	"github.com/surgeguard-io/surgeguard/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(ctx, w, data)
}

// decodeJSON reads a JSON request body into dst. An empty body is
// treated as an empty object so optional-field requests can omit it.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return goerr.Wrap(err, "invalid JSON request body")
	}
	return nil
}

// handleError maps use case errors to HTTP status codes
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrActionNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrActionNotPending):
		errutil.HandleHTTP(ctx, w, err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyPrompt):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	case errors.Is(err, dataset.ErrDataSource):
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}
