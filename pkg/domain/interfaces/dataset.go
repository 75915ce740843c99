package interfaces

import (
	"context"

	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
)

// DatasetLoader reads the static seed collections backing the dashboard
// and the action store.
type DatasetLoader interface {
	Actions(ctx context.Context) ([]*model.ActionItem, error)
	Hospitals(ctx context.Context) ([]*model.HospitalNode, error)
	KPI(ctx context.Context) (*model.KPIMetrics, error)
}
