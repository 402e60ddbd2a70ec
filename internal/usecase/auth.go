package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/errors"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/repository"
	pkgAuth "github.com/PsyYak/devopsai-b2c-monorepo/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	accounts repository.AccountRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns it together with an auth token.
func (u *AuthUseCase) Register(ctx context.Context, reg model.Registration) (*model.Account, string, error) {
	username := strings.TrimSpace(reg.Username)
	if username == "" || reg.Password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", domainErrors.ErrInvalidInput)
	}

	hash, err := u.hasher.Hash(reg.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	account, err := u.accounts.Create(ctx, model.Account{
		Username:     username,
		PasswordHash: hash,
		Name:         strings.TrimSpace(reg.Name),
		Email:        strings.TrimSpace(reg.Email),
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.Account, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	account, err := u.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// ParseToken extracts account ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// Profile returns the account identified by a previously parsed token.
func (u *AuthUseCase) Profile(ctx context.Context, id int64) (*model.Account, error) {
	return u.accounts.GetByID(ctx, id)
}
