package test

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/errors"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests.
type AccountRepositoryStub struct {
	Accounts map[string]*model.Account
	ByID     map[int64]*model.Account
	Next     int64
	Err      error
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		Accounts: make(map[string]*model.Account),
		ByID:     make(map[int64]*model.Account),
		Next:     1,
	}
}

// Create registers account unless already exists or stub has explicit error.
func (s *AccountRepositoryStub) Create(ctx context.Context, account model.Account) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Accounts == nil {
		s.Accounts = make(map[string]*model.Account)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Account)
	}
	if _, exists := s.Accounts[account.Username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	account.ID = s.Next
	s.Next++
	stored := account
	s.Accounts[account.Username] = &stored
	s.ByID[account.ID] = &stored
	return &account, nil
}

// GetByUsername fetches account by username or returns not found.
func (s *AccountRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.Accounts[username]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches account by identifier or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if account, ok := s.ByID[id]; ok {
		return account, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps products keyed by SKU and lets tests inject failures.
type ProductRepositoryStub struct {
	ListFn    func(context.Context) ([]model.Product, error)
	GetByIDFn func(context.Context, string) (*model.Product, error)
	UpsertFn  func(context.Context, model.Product) (*model.Product, error)

	mu       sync.Mutex
	Products []model.Product
	Upserted []model.Product
}

// List returns configured products sorted by name.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.Product(nil), s.Products...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetByID looks product up in configured slice.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Upsert records the call and stores product with a synthetic ID.
func (s *ProductRepositoryStub) Upsert(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, product)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Upserted = append(s.Upserted, product)
	if product.ID == "" {
		product.ID = "id-" + product.SKU
	}
	s.Products = append(s.Products, product)
	return &product, nil
}

// HealthCheckerStub reports configured storage health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
