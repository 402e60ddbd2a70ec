package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/config"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/repository"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/storage/memory"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/storage/postgres"
)

// Backend is a repository factory with connection management.
type Backend interface {
	repository.Factory
	HealthCheck(ctx context.Context) error
	Close()
}

// Module wires the storage backend selected by configuration and its repository adapters.
var Module = fx.Options(
	fx.Provide(newBackend),
	fx.Provide(
		func(b Backend) repository.AccountRepository { return b.Accounts() },
		func(b Backend) repository.ProductRepository { return b.Products() },
	),
	fx.Invoke(registerLifecycle),
)

type backendParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var newPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
	st, err := postgres.New(ctx, dsn, logger)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func newBackend(p backendParams) (Backend, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Warn("DATABASE_URI is empty, using in-memory storage")
		return memory.New(), nil
	}
	return newPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, backend Backend) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			backend.Close()
			return nil
		},
	})
}
