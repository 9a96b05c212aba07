package employee

import (
	"time"
)

type (
	ID   int64
	User struct {
		ID             ID
		Username       string
		Email          string
		FirstName      string
		LastName       string
		DocumentNumber string
		DateOfBirth    time.Time
		Role           Role
		PasswordHash   string
		ManagerID      *ID
		PhoneNumbers   PhoneNumbers

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	PhoneNumber struct {
		ID     ID
		Number string
		UserID ID
	}
	PhoneNumbers []PhoneNumber
)
