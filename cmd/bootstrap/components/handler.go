package components

import (
	"droidforge/internal/handler"
	"droidforge/internal/handler/api"
	"droidforge/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewPricingHandler,
		api.NewModelHandler,
		api.NewConceptHandler,
		api.NewOrderHandler,
		api.NewPrinterHandler,
		api.NewPaymentHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	pricing *api.PricingHandler,
	model *api.ModelHandler,
	concept *api.ConceptHandler,
	order *api.OrderHandler,
	printer *api.PrinterHandler,
	payment *api.PaymentHandler,
	contact *api.ContactHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		User:    user,
		Pricing: pricing,
		Model:   model,
		Concept: concept,
		Order:   order,
		Printer: printer,
		Payment: payment,
		Contact: contact,
	}
}
