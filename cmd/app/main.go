package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"trivia/cmd/fx/category_fx"
	"trivia/cmd/fx/controllers_fx"
	"trivia/cmd/fx/db_fx"
	"trivia/cmd/fx/memcache_fx"
	"trivia/cmd/fx/question_fx"
	"trivia/cmd/fx/quiz_fx"
	"trivia/internal/api"
	"trivia/internal/config"
	"trivia/internal/infra"
)

const shutdownTimeout = 10 * time.Second

// @title			Trivia API
// @version		1.0
// @description	Trivia question bank with paginated listing, search and a quiz flow
// @BasePath		/
func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(provideLogger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		db_fx.Module,
		memcache_fx.Module,
		category_fx.Module,
		question_fx.Module,
		quiz_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := infra.NewLogger(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
