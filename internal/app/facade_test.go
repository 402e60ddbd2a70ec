package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/errors"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	testhelpers "github.com/PsyYak/devopsai-b2c-monorepo/internal/test"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/usecase"
)

func newUserFacade(health testhelpers.HealthCheckerStub) (*UserFacade, *testhelpers.AccountRepositoryStub) {
	accounts := testhelpers.NewAccountRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 1, nil }}
	authUC := usecase.NewAuthUseCase(accounts, testhelpers.HasherStub{}, strategy)
	return NewUserFacade(authUC, health), accounts
}

func TestUserFacadeAuth(t *testing.T) {
	facade, accounts := newUserFacade(testhelpers.HealthCheckerStub{})
	ctx := context.Background()

	account, token, err := facade.Register(ctx, model.Registration{Username: "alice", Password: "secret", Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" || account.Username != "alice" {
		t.Fatalf("unexpected register result: %+v %q", account, token)
	}

	stored, err := accounts.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if stored.PasswordHash != "hash:secret" {
		t.Fatalf("expected hashed password, got %q", stored.PasswordHash)
	}

	token, err = facade.Authenticate(ctx, "alice", "secret")
	if err != nil || token != "token" {
		t.Fatalf("unexpected authenticate result: %q %v", token, err)
	}

	if _, err := facade.Authenticate(ctx, "alice", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	id, err := facade.ParseToken("anything")
	if err != nil || id != 1 {
		t.Fatalf("unexpected parse result: %d %v", id, err)
	}

	profile, err := facade.Profile(ctx, id)
	if err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if profile.Username != "alice" || profile.Email != "alice@example.com" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestUserFacadeReady(t *testing.T) {
	facade, _ := newUserFacade(testhelpers.HealthCheckerStub{})
	if err := facade.Ready(context.Background()); err != nil {
		t.Fatalf("expected ready, got %v", err)
	}

	facade, _ = newUserFacade(testhelpers.HealthCheckerStub{Err: errors.New("down")})
	if err := facade.Ready(context.Background()); err == nil {
		t.Fatal("expected readiness error")
	}
}

func TestCatalogFacade(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{}
	facade := NewCatalogFacade(usecase.NewCatalogUseCase(repo), testhelpers.HealthCheckerStub{})
	ctx := context.Background()

	products, err := facade.Products(ctx)
	if err != nil {
		t.Fatalf("products returned error: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", products)
	}

	n, err := facade.Seed(ctx)
	if err != nil {
		t.Fatalf("seed returned error: %v", err)
	}
	if n != len(usecase.DefaultProducts()) {
		t.Fatalf("expected %d seeded products, got %d", len(usecase.DefaultProducts()), n)
	}

	products, err = facade.Products(ctx)
	if err != nil || len(products) != n {
		t.Fatalf("unexpected products: %v %v", products, err)
	}

	product, err := facade.Product(ctx, products[0].ID)
	if err != nil || product.SKU != products[0].SKU {
		t.Fatalf("unexpected product: %+v %v", product, err)
	}

	if _, err := facade.Product(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := facade.Ready(ctx); err != nil {
		t.Fatalf("expected ready, got %v", err)
	}
}

func TestCatalogFacadeProductsError(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{ListFn: func(context.Context) ([]model.Product, error) {
		return nil, errors.New("boom")
	}}
	facade := NewCatalogFacade(usecase.NewCatalogUseCase(repo), testhelpers.HealthCheckerStub{Err: errors.New("down")})

	if _, err := facade.Products(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if err := facade.Ready(context.Background()); err == nil {
		t.Fatal("expected readiness error")
	}
}
