package employee

import (
	domain "employee-directory-api/internal/domain/employee"
)

func fromDBModel(model *User, phones []PhoneNumber) *domain.User {
	var u = &domain.User{
		ID:             domain.ID(model.ID),
		Username:       model.Username,
		Email:          model.Email,
		FirstName:      model.FirstName,
		LastName:       model.LastName,
		DocumentNumber: model.DocumentNumber,
		DateOfBirth:    model.DateOfBirth,
		Role:           domain.Role(model.Role),
		PasswordHash:   model.PasswordHash,
		ManagerID:      (*domain.ID)(model.ManagerID),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	for _, p := range phones {
		u.PhoneNumbers = append(u.PhoneNumbers, domain.PhoneNumber{
			ID:     domain.ID(p.ID),
			Number: p.Number,
			UserID: domain.ID(p.UserID),
		})
	}

	return u
}

func fromDBModels(models Users, phonesByUser map[int64][]PhoneNumber) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u, phonesByUser[u.ID])
	}

	return us
}
