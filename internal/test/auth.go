package test

import (
	"context"
	"errors"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	pkgAuth "github.com/PsyYak/devopsai-b2c-monorepo/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(accountID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(accountID)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Err     error
	ParseFn func(string) (int64, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// AuthFacadeStub simulates account facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, model.Registration) (*model.Account, string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
	ProfileFn      func(context.Context, int64) (*model.Account, error)
}

// Register echoes the registration back as a stored account.
func (s AuthFacadeStub) Register(ctx context.Context, reg model.Registration) (*model.Account, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	return &model.Account{ID: 1, Username: reg.Username, Name: reg.Name, Email: reg.Email}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated account.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// Profile returns a fixed account unless overridden.
func (s AuthFacadeStub) Profile(ctx context.Context, id int64) (*model.Account, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, id)
	}
	return &model.Account{ID: id, Username: "alice", Name: "Alice", Email: "alice@example.com"}, nil
}

// ReadinessStub reports configured readiness error.
type ReadinessStub struct {
	Err error
}

// Ready returns configured error.
func (s ReadinessStub) Ready(context.Context) error {
	return s.Err
}

// UserFacadeStub aggregates facade dependencies for user-service HTTP tests.
type UserFacadeStub struct {
	AuthFacadeStub
	ReadinessStub
}

// CatalogFacadeStub simulates product catalog reads.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	ProductFn  func(context.Context, string) (*model.Product, error)
}

// Products returns a one element catalog unless overridden.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "p-1", SKU: "MUG-001", Name: "Coffee Mug", Price: 9.5}}, nil
}

// Product returns a product with the requested ID unless overridden.
func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, SKU: "MUG-001", Name: "Coffee Mug", Price: 9.5}, nil
}

// OrderFacadeStub aggregates facade dependencies for order-service HTTP tests.
type OrderFacadeStub struct {
	CatalogFacadeStub
	ReadinessStub
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
