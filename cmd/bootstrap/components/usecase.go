package components

import (
	"bistro-booking/internal/domain/reservation"
	"bistro-booking/internal/pkg/clock"
	"bistro-booking/internal/pkg/config"
	"bistro-booking/internal/usecase"
	"bistro-booking/internal/usecase/commands"
	"bistro-booking/internal/usecase/queries"

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
	func(cfg config.Config) reservation.ServiceSlots {
		return reservation.BuildServiceSlots(cfg.Booking.FirstSlot, cfg.Booking.LastSlot, cfg.Booking.SlotInterval)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewAdminUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store queries.ReservationReadStore, cfg config.Config) queries.ReservationQueries {
			return queries.NewReservationQueries(store, cfg.Booking.AdminPageSize)
		},
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
