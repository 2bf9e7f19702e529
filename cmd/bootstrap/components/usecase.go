package components

import (
	"adspace-backend/internal/pkg/clock"
	"adspace-backend/internal/usecase"
	"adspace-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewReservationQueries,
		queries.NewResourceQueries,
		usecase.NewBookingCoordinator,
		usecase.NewTokenValidator,
	),
)
