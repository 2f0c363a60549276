package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trivia/internal/config"
	"trivia/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(migrate),
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, log)
			return nil
		},
	})
	return db, nil
}

func migrate(lc fx.Lifecycle, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := infra.AutoMigrate(db); err != nil {
				return err
			}
			log.Info("schema migrated")

			if !cfg.SeedCategories {
				return nil
			}
			n, err := infra.SeedCategories(ctx, db)
			if err != nil {
				return err
			}
			if n > 0 {
				log.Info("categories seeded", zap.Int("count", n))
			}
			return nil
		},
	})
}
