package bootstrap

import (
	"context"

	"cleaning-scheduler/internal/infra/db"
	"cleaning-scheduler/internal/infra/seed"
	"cleaning-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(
		prepareDatabase,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := db.NewPool(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

// prepareDatabase creates the schema and loads the demo roster before the
// server starts accepting requests.
func prepareDatabase(lc fx.Lifecycle, pool *pgxpool.Pool, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := seed.EnsureSchema(ctx, pool); err != nil {
				return err
			}
			return seed.Run(ctx, pool, cfg.Schedule)
		},
	})
}
