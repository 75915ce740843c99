package config

import (
	"github.com/urfave/cli/v3"

	"github.com/surgeguard-io/surgeguard/pkg/service/dataset"
)

// Seed holds CLI flags for seed data file overrides. When a flag is
// empty, the embedded default dataset is used.
type Seed struct {
	actionsPath   string
	hospitalsPath string
	kpiPath       string
}

// Flags returns CLI flags for seed data configuration
func (s *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed-actions",
			Usage:       "Path to an action seed JSON file",
			Category:    "Seed data",
			Sources:     cli.EnvVars("SURGEGUARD_SEED_ACTIONS"),
			Destination: &s.actionsPath,
		},
		&cli.StringFlag{
			Name:        "seed-hospitals",
			Usage:       "Path to a hospital seed JSON file",
			Category:    "Seed data",
			Sources:     cli.EnvVars("SURGEGUARD_SEED_HOSPITALS"),
			Destination: &s.hospitalsPath,
		},
		&cli.StringFlag{
			Name:        "seed-kpi",
			Usage:       "Path to a KPI seed JSON file",
			Category:    "Seed data",
			Sources:     cli.EnvVars("SURGEGUARD_SEED_KPI"),
			Destination: &s.kpiPath,
		},
	}
}

// Configure builds the dataset loader from the configured paths
func (s *Seed) Configure() *dataset.Loader {
	var opts []dataset.Option
	if s.actionsPath != "" {
		opts = append(opts, dataset.WithActionsFile(s.actionsPath))
	}
	if s.hospitalsPath != "" {
		opts = append(opts, dataset.WithHospitalsFile(s.hospitalsPath))
	}
	if s.kpiPath != "" {
		opts = append(opts, dataset.WithKPIFile(s.kpiPath))
	}
	return dataset.New(opts...)
}
