package repository

import (
	"context"

	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
)

// AccountRepository describes persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account model.Account) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
}
