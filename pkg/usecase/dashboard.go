package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
)

// DashboardUseCase serves the read-only KPI and hospital projections
type DashboardUseCase struct {
	loader interfaces.DatasetLoader
}

func NewDashboardUseCase(loader interfaces.DatasetLoader) *DashboardUseCase {
	return &DashboardUseCase{
		loader: loader,
	}
}

func (uc *DashboardUseCase) GetKPI(ctx context.Context) (*model.KPIMetrics, error) {
	metrics, err := uc.loader.KPI(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load KPI metrics")
	}
	return metrics, nil
}

func (uc *DashboardUseCase) ListHospitals(ctx context.Context) ([]*model.HospitalNode, error) {
	nodes, err := uc.loader.Hospitals(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load hospitals")
	}
	return nodes, nil
}
