package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/app"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/config"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/repository"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/test"
)

func testConfig(service string) *config.Config {
	return &config.Config{
		ServiceName:     service,
		RunAddress:      "127.0.0.1:0",
		JWTSecret:       "secret",
		TokenStrategy:   config.TokenStrategyHMAC,
		TokenTTL:        time.Hour,
		ShutdownTimeout: time.Second,
		LoginRateLimit:  1,
		LoginRateBurst:  1,
		LogLevel:        "info",
	}
}

func backgroundContext() fx.Option {
	return fx.Provide(func() context.Context { return context.Background() })
}

func TestUserModuleComposesGraphWithReplacements(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	accounts := test.NewAccountRepositoryStub()

	var facade *app.UserFacade
	fxApp := fx.New(
		fx.NopLogger,
		backgroundContext(),
		UserModule(
			fx.Replace(testConfig(config.UserService)),
			fx.Replace(logger),
			fx.Replace(fx.Annotate(accounts, fx.As(new(repository.AccountRepository)))),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected user facade instance")
	}

	if _, _, err := facade.Register(context.Background(), model.Registration{Username: "alice", Password: "p@ss"}); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, ok := accounts.Accounts["alice"]; !ok {
		t.Fatal("expected replaced repository to receive the account")
	}
}

func TestOrderModuleSeedsCatalogOnStart(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.CatalogFacade
	fxApp := fx.New(
		fx.NopLogger,
		backgroundContext(),
		OrderModule(
			fx.Replace(testConfig(config.OrderService)),
			fx.Replace(logger),
		),
		fx.Populate(&facade),
	)
	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fxApp.Start(ctx); err != nil {
		t.Fatalf("start returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })

	products, err := facade.Products(context.Background())
	if err != nil {
		t.Fatalf("products returned error: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected catalog to be seeded on start")
	}
}
