package components

import (
	"droidforge/internal/infra/db"
	"droidforge/internal/infra/readstore"
	"droidforge/internal/infra/writerepo"
	"droidforge/internal/usecase/commands"
	"droidforge/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			writerepo.NewModelRepository,
			fx.As(new(commands.ModelRepository)),
		),
		fx.Annotate(
			writerepo.NewConceptRepository,
			fx.As(new(commands.ConceptRepository)),
		),
		fx.Annotate(
			writerepo.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			writerepo.NewPrinterRepository,
			fx.As(new(commands.PrinterRepository)),
		),
		fx.Annotate(
			writerepo.NewTaskRepository,
			fx.As(new(commands.TaskRepository)),
		),
		fx.Annotate(
			writerepo.NewCommunicationRepository,
			fx.As(new(commands.CommunicationRepository)),
		),
		fx.Annotate(
			writerepo.NewContactRepository,
			fx.As(new(commands.ContactRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewModelReadStore,
			fx.As(new(queries.ModelReadStore)),
		),
		fx.Annotate(
			readstore.NewConceptReadStore,
			fx.As(new(queries.ConceptReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewPrinterReadStore,
			fx.As(new(queries.PrinterReadStore)),
			fx.As(new(commands.MatchingPrinterSource)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
