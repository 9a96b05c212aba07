package employee

type (
	Response struct {
		ID             int64                 `json:"id"`
		Username       string                `json:"userName"`
		Email          string                `json:"email"`
		FirstName      string                `json:"firstName"`
		LastName       string                `json:"lastName"`
		DocumentNumber string                `json:"documentNumber"`
		DateOfBirth    string                `json:"dateOfBirth"`
		Role           string                `json:"role"`
		ManagerID      *int64                `json:"managerId"`
		PhoneNumbers   []PhoneNumberResponse `json:"phoneNumbers"`
	}
	Responses []Response

	PhoneNumberResponse struct {
		ID     int64  `json:"id"`
		Number string `json:"number"`
	}

	PagedResponse struct {
		Items           Responses `json:"items"`
		Page            int       `json:"page"`
		PageSize        int       `json:"pageSize"`
		TotalCount      int       `json:"totalCount"`
		HasNextPage     bool      `json:"hasNextPage"`
		HasPreviousPage bool      `json:"hasPreviousPage"`
	}
)
