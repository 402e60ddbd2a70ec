package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/errors"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/repository"
)

// Store keeps accounts and products in process memory.
type Store struct {
	mu sync.RWMutex

	nextAccountID int64
	accounts      map[int64]model.Account
	usernames     map[string]int64

	products map[string]model.Product
	skus     map[string]string

	now func() time.Time
}

type accountRepository struct {
	store *Store
}

type productRepository struct {
	store *Store
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		accounts:  make(map[int64]model.Account),
		usernames: make(map[string]int64),
		products:  make(map[string]model.Product),
		skus:      make(map[string]string),
		now:       time.Now,
	}
}

func (s *Store) Accounts() repository.AccountRepository {
	return &accountRepository{store: s}
}

func (s *Store) Products() repository.ProductRepository {
	return &productRepository{store: s}
}

// HealthCheck always succeeds unless ctx is already done.
func (s *Store) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op kept for parity with database backed storage.
func (s *Store) Close() {}

func (r *accountRepository) Create(ctx context.Context, account model.Account) (*model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernames[account.Username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.nextAccountID++
	account.ID = s.nextAccountID
	account.CreatedAt = s.now().UTC()
	s.accounts[account.ID] = account
	s.usernames[account.Username] = account.ID
	return &account, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	account := s.accounts[id]
	return &account, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &account, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.RLock()
	result := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].SKU < result[j].SKU
	})
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &product, nil
}

func (r *productRepository) Upsert(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, exists := s.skus[product.SKU]; exists {
		existing := s.products[id]
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
	} else {
		if product.ID == "" {
			product.ID = uuid.NewString()
		} else if _, taken := s.products[product.ID]; taken {
			return nil, fmt.Errorf("product id %s: %w", product.ID, domainErrors.ErrAlreadyExists)
		}
		product.CreatedAt = s.now().UTC()
	}
	s.products[product.ID] = product
	s.skus[product.SKU] = product.ID
	return &product, nil
}
