// Package validator holds the declarative rule sets for the employee API.
// Rules accumulate: every failing field is reported, keyed by its JSON name.
package validator

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	domain "employee-directory-api/internal/domain/employee"
	"employee-directory-api/internal/interface/api/rest/dto/employee"
)

const (
	minPasswordLen    = 8
	maxDocumentLen    = 20
	maxPhoneNumberLen = 20
	minAgeYears       = 18
	dateLayout        = "2006-01-02"
)

// ValidateUser applies the full create/update rule set. The returned error
// is a validation.Errors map (field name -> message) or nil.
func ValidateUser(r employee.Request) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("Username is required")),
		validation.Field(&r.FirstName,
			validation.Required.Error("First name is required")),
		validation.Field(&r.LastName,
			validation.Required.Error("Last name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email address format")),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.Length(minPasswordLen, 0).Error(
				fmt.Sprintf("Password must be at least %d characters long", minPasswordLen)),
			validation.By(passwordComplexity)),
		validation.Field(&r.RePassword,
			validation.By(stringEquals(r.Password, "Password confirmation does not match the password"))),
		validation.Field(&r.DocumentNumber,
			validation.Required.Error("Document number is required"),
			validation.Length(0, maxDocumentLen).Error(
				fmt.Sprintf("Document number must be at most %d characters long", maxDocumentLen))),
		validation.Field(&r.PhoneNumbers,
			validation.Required.Error("At least one phone number is required"),
			validation.By(phoneNumbersValid)),
		validation.Field(&r.DateOfBirth,
			validation.Required.Error("Date of birth is required"),
			validation.By(atLeast18YearsOld)),
		validation.Field(&r.Role,
			validation.Required.Error("Role is required"),
			validation.By(assignableRole)),
	)
}

func ValidateLogin(r employee.LoginRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("Username is required")),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required")),
	)
}

// ValidateID parses a route id parameter.
func ValidateID(s string) (domain.ID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return domain.ID(id), nil
}

// ParseFilter builds the list filter from query parameters. Unset
// parameters stay nil and are skipped by the repository.
func ParseFilter(q url.Values) (domain.Filter, error) {
	var f domain.Filter

	if v := q.Get("userName"); v != "" {
		f.Username = &v
	}
	if v := q.Get("email"); v != "" {
		f.Email = &v
	}
	if v := q.Get("documentNumber"); v != "" {
		f.DocumentNumber = &v
	}
	if v := q.Get("managerId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, errors.New("managerId must be an integer")
		}
		mid := domain.ID(id)
		f.ManagerID = &mid
	}
	if v := q.Get("role"); v != "" {
		role, err := domain.ParseRole(v)
		if err != nil {
			return f, err
		}
		f.Role = &role
	}
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 0 {
			return f, errors.New("invalid page")
		}
		f.Page = p
	}
	if v := q.Get("pageSize"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 0 {
			return f, errors.New("invalid pageSize")
		}
		f.PageSize = p
	}
	f.SortBy = q.Get("sortBy")
	if v := q.Get("isDesc"); v != "" {
		desc, err := strconv.ParseBool(v)
		if err != nil {
			return f, errors.New("isDesc must be a boolean")
		}
		f.Desc = desc
	}

	return f, nil
}

func passwordComplexity(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required already reported
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return errors.New("Password must contain at least one uppercase letter")
	case !hasLower:
		return errors.New("Password must contain at least one lowercase letter")
	case !hasDigit:
		return errors.New("Password must contain at least one digit")
	case !hasSpecial:
		return errors.New("Password must contain at least one special character")
	}
	return nil
}

func stringEquals(want, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != want {
			return errors.New(msg)
		}
		return nil
	}
}

func phoneNumbersValid(value interface{}) error {
	phones, _ := value.([]employee.PhoneNumberRequest)

	seen := make(map[string]struct{}, len(phones))
	for _, p := range phones {
		if p.Number == "" {
			return errors.New("Phone number must not be empty")
		}
		if len(p.Number) > maxPhoneNumberLen {
			return fmt.Errorf("Phone number must be at most %d characters long", maxPhoneNumberLen)
		}
		if _, dup := seen[p.Number]; dup {
			return errors.New("Phone numbers must be unique")
		}
		seen[p.Number] = struct{}{}
	}
	return nil
}

// atLeast18YearsOld applies the calendar-aware age rule: the raw year
// difference, decremented when the birthday has not yet occurred this year.
func atLeast18YearsOld(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	dob, err := time.Parse(dateLayout, s)
	if err != nil {
		return errors.New("Date of birth must be YYYY-MM-DD")
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	age := today.Year() - dob.Year()
	if dob.After(today.AddDate(-age, 0, 0)) {
		age--
	}
	if age < minAgeYears {
		return fmt.Errorf("The user must be at least %d years old", minAgeYears)
	}
	return nil
}

func assignableRole(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	role, err := domain.ParseRole(s)
	if err != nil || role == domain.RoleAdmin {
		return errors.New("Role must be a valid enumeration value (Employee, Leader, or Director)")
	}
	return nil
}
