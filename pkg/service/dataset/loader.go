package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/domain/model"
)

//go:embed data/actions.json data/hospitals.json data/kpi.json
var defaultData embed.FS

// ErrDataSource indicates missing or malformed seed data. It surfaces at
// the HTTP boundary as a 500-equivalent for the affected read.
var ErrDataSource = goerr.New("seed data source error")

// Loader reads the static seed collections. By default it serves the
// embedded datasets; file paths can override each collection.
type Loader struct {
	actionsPath   string
	hospitalsPath string
	kpiPath       string
}

var _ interfaces.DatasetLoader = &Loader{}

// Option is a functional option for the loader
type Option func(*Loader)

// WithActionsFile overrides the embedded action seed data
func WithActionsFile(path string) Option {
	return func(l *Loader) {
		l.actionsPath = path
	}
}

// WithHospitalsFile overrides the embedded hospital seed data
func WithHospitalsFile(path string) Option {
	return func(l *Loader) {
		l.hospitalsPath = path
	}
}

// WithKPIFile overrides the embedded KPI seed data
func WithKPIFile(path string) Option {
	return func(l *Loader) {
		l.kpiPath = path
	}
}

// New creates a seed data loader
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) read(embeddedName, overridePath string) ([]byte, error) {
	if overridePath != "" {
		// #nosec G304 - path is provided by CLI flag
		raw, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, goerr.Wrap(ErrDataSource, "failed to read seed data file",
				goerr.V("path", overridePath))
		}
		return raw, nil
	}

	raw, err := defaultData.ReadFile(embeddedName)
	if err != nil {
		return nil, goerr.Wrap(ErrDataSource, "failed to read embedded seed data",
			goerr.V("name", embeddedName))
	}
	return raw, nil
}

// Actions parses and validates the action seed collection
func (l *Loader) Actions(ctx context.Context) ([]*model.ActionItem, error) {
	raw, err := l.read("data/actions.json", l.actionsPath)
	if err != nil {
		return nil, err
	}

	var items []*model.ActionItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, goerr.Wrap(ErrDataSource, "actions seed data must be a JSON list",
			goerr.V("error", err.Error()))
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, goerr.Wrap(ErrDataSource, "invalid action seed entry",
				goerr.V("id", item.ID), goerr.V("error", err.Error()))
		}
	}

	return items, nil
}

// Hospitals parses and validates the hospital seed collection
func (l *Loader) Hospitals(ctx context.Context) ([]*model.HospitalNode, error) {
	raw, err := l.read("data/hospitals.json", l.hospitalsPath)
	if err != nil {
		return nil, err
	}

	var nodes []*model.HospitalNode
	if err := json.Unmarshal(raw, &nodes); err != nil {
		return nil, goerr.Wrap(ErrDataSource, "hospitals seed data must be a JSON list",
			goerr.V("error", err.Error()))
	}

	for _, node := range nodes {
		if err := node.Validate(); err != nil {
			return nil, goerr.Wrap(ErrDataSource, "invalid hospital seed entry",
				goerr.V("id", node.ID), goerr.V("error", err.Error()))
		}
	}

	return nodes, nil
}

// KPI parses and validates the KPI seed object
func (l *Loader) KPI(ctx context.Context) (*model.KPIMetrics, error) {
	raw, err := l.read("data/kpi.json", l.kpiPath)
	if err != nil {
		return nil, err
	}

	var metrics model.KPIMetrics
	if err := json.Unmarshal(raw, &metrics); err != nil {
		return nil, goerr.Wrap(ErrDataSource, "KPI seed data must be a JSON object",
			goerr.V("error", err.Error()))
	}

	if err := metrics.Validate(); err != nil {
		return nil, goerr.Wrap(ErrDataSource, "invalid KPI seed data",
			goerr.V("error", err.Error()))
	}

	return &metrics, nil
}
