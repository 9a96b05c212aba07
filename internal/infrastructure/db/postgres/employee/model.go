package employee

import (
	"time"
)

type (
	User struct {
		ID             int64
		Username       string
		Email          string
		FirstName      string
		LastName       string
		DocumentNumber string
		DateOfBirth    time.Time
		Role           int
		PasswordHash   string
		ManagerID      *int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	PhoneNumber struct {
		ID     int64
		Number string
		UserID int64
	}
)
