package ports

import (
	"employee-directory-api/internal/domain/employee"
)

type Auth interface {
	GenerateToken(u *employee.User, requestPassword string) (string, error)
}
