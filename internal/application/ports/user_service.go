package ports

import (
	"context"

	"employee-directory-api/internal/domain/employee"
	"employee-directory-api/pkg/paging"
)

// Claims carries the authenticated caller's identity as extracted from the
// bearer token. A zero value means the request carried no usable claims.
type Claims struct {
	Username string
	UserID   int64
	Role     string
}

type UserDirectoryService interface {
	Create(ctx context.Context, u employee.User, password string, caller Claims) (*employee.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Update(ctx context.Context, id employee.ID, u employee.User, password string) (*employee.User, error)
	Remove(ctx context.Context, id employee.ID) (*employee.User, error)
	GetByID(ctx context.Context, id employee.ID) (*employee.User, error)
	GetList(ctx context.Context, f employee.Filter) (paging.PagedResult[*employee.User], error)
}
