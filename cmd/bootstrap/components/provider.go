package components

import (
	"droidforge/internal/infra/provider"
	"droidforge/internal/usecase/commands"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		fx.Annotate(
			provider.NewOpenAIClient,
			fx.As(new(commands.PromptEnhancer)),
		),
		provider.NewConceptImageProvider,
		fx.Annotate(
			provider.NewRegistry,
			fx.As(new(commands.ProviderRegistry)),
		),
		fx.Annotate(
			provider.NewStripeClient,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			provider.NewElevenLabsClient,
			fx.As(new(commands.VoiceAgent)),
		),
	),
)
