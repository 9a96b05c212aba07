package employee

type (
	// Request carries the employee payload for both registration and
	// update. All mutable fields are overwritten on update.
	Request struct {
		Username       string               `json:"userName"`
		Password       string               `json:"password"`
		RePassword     string               `json:"rePassword"`
		FirstName      string               `json:"firstName"`
		LastName       string               `json:"lastName"`
		Email          string               `json:"email"`
		DocumentNumber string               `json:"documentNumber"`
		PhoneNumbers   []PhoneNumberRequest `json:"phoneNumbers"`
		ManagerID      *int64               `json:"managerId"`
		DateOfBirth    string               `json:"dateOfBirth"`
		Role           string               `json:"role"`
	}

	PhoneNumberRequest struct {
		Number string `json:"number"`
	}

	LoginRequest struct {
		Username string `json:"userName"`
		Password string `json:"password"`
	}
)
