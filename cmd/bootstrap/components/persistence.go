package components

import (
	"cleaning-scheduler/internal/infra/readstore"
	"cleaning-scheduler/internal/infra/repository"
	"cleaning-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			readstore.NewCleanerReadStore,
			fx.As(new(shared.CleanerReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
	),
)
