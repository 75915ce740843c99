package usecase

import (
	"github.com/surgeguard-io/surgeguard/pkg/domain/interfaces"
	"github.com/surgeguard-io/surgeguard/pkg/service/advisory"
	"github.com/surgeguard-io/surgeguard/pkg/service/dataset"
	"github.com/surgeguard-io/surgeguard/pkg/service/notify"
)

type UseCases struct {
	repo      interfaces.Repository
	gateway   interfaces.NotificationGateway
	generator interfaces.DraftGenerator
	loader    interfaces.DatasetLoader

	Action    *ActionUseCase
	Advisory  *AdvisoryUseCase
	Dashboard *DashboardUseCase
}

type Option func(*UseCases)

// WithGateway injects the notification gateway (defaults to dry-run)
func WithGateway(gateway interfaces.NotificationGateway) Option {
	return func(uc *UseCases) {
		uc.gateway = gateway
	}
}

// WithGenerator injects the draft generator (defaults to mock)
func WithGenerator(generator interfaces.DraftGenerator) Option {
	return func(uc *UseCases) {
		uc.generator = generator
	}
}

// WithDataset injects the seed data loader (defaults to embedded data)
func WithDataset(loader interfaces.DatasetLoader) Option {
	return func(uc *UseCases) {
		uc.loader = loader
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.gateway == nil {
		uc.gateway = notify.NewDryRun()
	}
	if uc.generator == nil {
		uc.generator = advisory.NewMock()
	}
	if uc.loader == nil {
		uc.loader = dataset.New()
	}

	uc.Action = NewActionUseCase(repo, uc.gateway)
	uc.Advisory = NewAdvisoryUseCase(uc.generator)
	uc.Dashboard = NewDashboardUseCase(uc.loader)

	return uc
}
