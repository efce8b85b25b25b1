package components

import (
	"hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/pkg/clock"
	"hotel-loyalty-core/internal/pkg/config"
	"hotel-loyalty-core/internal/usecase"
	"hotel-loyalty-core/internal/usecase/commands"
	"hotel-loyalty-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewTierPolicy,
	booking.NewFactory,
	func(cfg config.Config) config.LoyaltyConfig { return cfg.Loyalty },
)

func NewTierPolicy(cfg config.Config) (*loyalty.TierPolicy, error) {
	return loyalty.NewTierPolicy([]loyalty.TierDefinition{
		{Name: loyalty.TierBronze, Threshold: 0, Multiplier: cfg.Tier.BronzeMultiplier, Benefits: []string{"member_rates"}},
		{Name: loyalty.TierSilver, Threshold: cfg.Tier.SilverThreshold, Multiplier: cfg.Tier.SilverMultiplier, Benefits: []string{"member_rates", "late_checkout"}},
		{Name: loyalty.TierGold, Threshold: cfg.Tier.GoldThreshold, Multiplier: cfg.Tier.GoldMultiplier, Benefits: []string{"member_rates", "late_checkout", "room_upgrade"}},
		{Name: loyalty.TierPlatinum, Threshold: cfg.Tier.PlatinumThreshold, Multiplier: cfg.Tier.PlatinumMultiplier, Benefits: []string{"member_rates", "late_checkout", "room_upgrade", "lounge_access"}},
	})
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLedgerService,
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewLoyaltyCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewLoyaltyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
