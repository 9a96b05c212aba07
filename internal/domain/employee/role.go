package employee

import (
	"errors"
	"strconv"
	"strings"
)

// Role is the ordered permission tier of a user. Employee < Leader <
// Director; Admin is a reserved tier that sits outside the normal ordering
// and outranks all of them.
type Role int

const (
	RoleEmployee Role = 1
	RoleLeader   Role = 2
	RoleDirector Role = 3

	// RoleAdmin is a sentinel, never assigned through the API.
	RoleAdmin Role = 99
)

var ErrUnknownRole = errors.New("unknown role")

func (r Role) String() string {
	switch r {
	case RoleEmployee:
		return "Employee"
	case RoleLeader:
		return "Leader"
	case RoleDirector:
		return "Director"
	case RoleAdmin:
		return "Admin"
	}
	return "Unknown"
}

// Rank orders roles for authorization checks. A caller may grant roles up
// to and including its own rank.
func (r Role) Rank() int { return int(r) }

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleLeader, RoleDirector, RoleAdmin:
		return true
	}
	return false
}

// ParseRole accepts a role name (case-insensitive) or its numeric value.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "employee":
		return RoleEmployee, nil
	case "leader":
		return RoleLeader, nil
	case "director":
		return RoleDirector, nil
	case "admin":
		return RoleAdmin, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		r := Role(n)
		if r.Valid() {
			return r, nil
		}
	}
	return 0, ErrUnknownRole
}
