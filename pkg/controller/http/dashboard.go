package http

import (
	"net/http"

	"github.com/surgeguard-io/surgeguard/pkg/usecase"
)

// getKPIHandler serves the high-level dashboard metrics
func getKPIHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		metrics, err := uc.GetKPI(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, metrics)
	}
}

// listHospitalsHandler serves the hospital nodes for the diffusion map
func listHospitalsHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		nodes, err := uc.ListHospitals(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, nodes)
	}
}
