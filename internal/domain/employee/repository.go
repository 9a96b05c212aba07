package employee

import (
	"context"

	"employee-directory-api/pkg/paging"
)

// Filter narrows GetList results. Nil fields are skipped; set fields are
// combined conjunctively.
type Filter struct {
	Username       *string
	Email          *string
	DocumentNumber *string
	ManagerID      *ID
	Role           *Role

	paging.Params
}

type Repository interface {
	GetList(ctx context.Context, f Filter) (paging.PagedResult[*User], error)
	GetByID(ctx context.Context, id ID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*User, error)
	Create(ctx context.Context, u User) (*User, error)
	Update(ctx context.Context, u User) (*User, error)
	Delete(ctx context.Context, id ID) (*User, error)
}
