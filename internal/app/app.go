package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/config"
)

// UserModule wires the user service facade, HTTP server and lifecycle hooks.
var UserModule = fx.Options(
	fx.Provide(
		NewUserFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

// OrderModule wires the order service facade, catalog seeding, HTTP server and lifecycle hooks.
var OrderModule = fx.Options(
	fx.Provide(
		NewCatalogFacade,
		newHTTPServer,
	),
	fx.Invoke(registerCatalogSeed, registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

// CatalogSeeder fills an empty catalog with default products.
type CatalogSeeder interface {
	Seed(ctx context.Context) (int, error)
}

type seedParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *slog.Logger
	Facade    *CatalogFacade
}

func registerCatalogSeed(p seedParams) {
	appendSeedHook(p.Lifecycle, p.Facade, p.Logger)
}

func appendSeedHook(lc fx.Lifecycle, seeder CatalogSeeder, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			n, err := seeder.Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
			if n > 0 {
				logger.Info("catalog seeded", slog.Int("products", n))
			}
			return nil
		},
	})
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting http server", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("http server stopped")
			return nil
		},
	})
}
