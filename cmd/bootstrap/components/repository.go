package components

import (
	"bistro-booking/internal/infra/readstore"
	repo_impl "bistro-booking/internal/infra/repository"
	"bistro-booking/internal/infra/sqlq"
	"bistro-booking/internal/usecase/commands"
	"bistro-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read-side store serves the query services and the concurrency
		// snapshot reads of the admin commands.
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.StatsReadStore)),
			fx.As(new(commands.ReservationReader)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlq.Queries {
	return sqlq.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlq.DBTX {
	return pool
}
