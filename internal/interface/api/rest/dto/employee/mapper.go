package employee

import (
	"errors"
	"time"

	domain "employee-directory-api/internal/domain/employee"
	"employee-directory-api/pkg/paging"
)

const dateLayout = "2006-01-02"

func ToResponse(uDomain domain.User) Response {
	var u = Response{
		ID:             int64(uDomain.ID),
		Username:       uDomain.Username,
		Email:          uDomain.Email,
		FirstName:      uDomain.FirstName,
		LastName:       uDomain.LastName,
		DocumentNumber: uDomain.DocumentNumber,
		DateOfBirth:    uDomain.DateOfBirth.Format(dateLayout),
		Role:           uDomain.Role.String(),
		ManagerID:      (*int64)(uDomain.ManagerID),
	}

	for _, p := range uDomain.PhoneNumbers {
		u.PhoneNumbers = append(u.PhoneNumbers, PhoneNumberResponse{
			ID:     int64(p.ID),
			Number: p.Number,
		})
	}

	return u
}

func ToResponses(usDomain domain.Users) Responses {
	us := make(Responses, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponse(*u)
	}

	return us
}

func ToPagedResponse(r paging.PagedResult[*domain.User]) PagedResponse {
	return PagedResponse{
		Items:           ToResponses(r.Items),
		Page:            r.Page,
		PageSize:        r.PageSize,
		TotalCount:      r.TotalCount,
		HasNextPage:     r.HasNextPage(),
		HasPreviousPage: r.HasPreviousPage(),
	}
}

// ToDomainUser maps a validated request onto a domain entity. The plaintext
// password is not part of the entity; the service hashes it separately.
func ToDomainUser(uRequest Request) (domain.User, error) {
	d, err := time.Parse(dateLayout, uRequest.DateOfBirth)
	if err != nil {
		return domain.User{}, errors.New("invalid dateOfBirth format, want YYYY-MM-DD")
	}

	role, err := domain.ParseRole(uRequest.Role)
	if err != nil {
		return domain.User{}, err
	}

	var u = domain.User{
		Username:       uRequest.Username,
		Email:          uRequest.Email,
		FirstName:      uRequest.FirstName,
		LastName:       uRequest.LastName,
		DocumentNumber: uRequest.DocumentNumber,
		DateOfBirth:    d,
		Role:           role,
		ManagerID:      (*domain.ID)(uRequest.ManagerID),
	}

	for _, p := range uRequest.PhoneNumbers {
		u.PhoneNumbers = append(u.PhoneNumbers, domain.PhoneNumber{Number: p.Number})
	}

	return u, nil
}
