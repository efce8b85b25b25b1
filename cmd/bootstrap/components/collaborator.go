package components

import (
	"hotel-loyalty-core/internal/infra/collaborator"
	"hotel-loyalty-core/internal/pkg/config"
	"hotel-loyalty-core/internal/usecase/commands"

	"go.uber.org/fx"
)

var CollaboratorModule = fx.Module("collaborator",
	fx.Provide(
		func(cfg config.Config) commands.PricingPort {
			return collaborator.NewPricingClient(cfg.Collaborator)
		},
		func(cfg config.Config) commands.EligibilityPort {
			return collaborator.NewEligibilityClient(cfg.Collaborator)
		},
		func(cfg config.Config) commands.InventoryPort {
			return collaborator.NewInventoryClient(cfg.Collaborator)
		},
	),
)
