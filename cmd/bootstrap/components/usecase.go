package components

import (
	"droidforge/internal/pkg/clock"
	"droidforge/internal/usecase/commands"
	"droidforge/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewModelQueries,
		queries.NewConceptQueries,
		queries.NewOrderQueries,
		queries.NewPrinterQueries,
		queries.NewPricingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewGenerationCommands,
		commands.NewConceptCommands,
		commands.NewOrderCommands,
		commands.NewPrinterCommands,
		commands.NewPaymentCommands,
		commands.NewContactCommands,
	),
)
