package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "employee-directory-api/internal/domain/employee"
	"employee-directory-api/internal/infrastructure/db/postgres"
	"employee-directory-api/pkg/paging"
)

var (
	ErrUsernameAlreadyExists       = errors.New("Employee with this userName already exists")
	ErrDocumentNumberAlreadyExists = errors.New("Employee with this document number already exists")
	ErrManagerNotFound             = errors.New("manager does not exist")
	ErrManagerReferenced           = errors.New("employee is referenced as a manager and cannot be deleted")
)

// sort keys clients may pass, resolved to real columns. Anything else is
// rejected up front. Keys follow the JSON field names; plain "username" is
// accepted as well.
var sortColumns = paging.SortColumns{
	"id":             "id",
	"userName":       "username",
	"username":       "username",
	"email":          "email",
	"firstName":      "first_name",
	"lastName":       "last_name",
	"documentNumber": "document_number",
	"dateOfBirth":    "date_of_birth",
	"role":           "role",
	"managerId":      "manager_id",
}

// DB is satisfied by *pgxpool.Pool and by pgxmock in tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) domain.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*User, error) {
	u := new(User)
	err := s.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.DocumentNumber,
		&u.DateOfBirth,
		&u.Role,
		&u.PasswordHash,
		&u.ManagerID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// buildFilter turns the set filter fields into a conjunctive WHERE clause.
func buildFilter(f domain.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if f.Username != nil {
		add("username", *f.Username)
	}
	if f.Email != nil {
		add("email", *f.Email)
	}
	if f.DocumentNumber != nil {
		add("document_number", *f.DocumentNumber)
	}
	if f.ManagerID != nil {
		add("manager_id", int64(*f.ManagerID))
	}
	if f.Role != nil {
		add("role", int(*f.Role))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *Repository) GetList(ctx context.Context, f domain.Filter) (paging.PagedResult[*domain.User], error) {
	var res paging.PagedResult[*domain.User]

	where, args := buildFilter(f)

	// total count before paging
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`+where, args...).Scan(&total); err != nil {
		return res, err
	}

	q := `SELECT ` + userColumns + ` FROM users` + where
	if f.SortBy != "" {
		col, err := sortColumns.Column(f.SortBy)
		if err != nil {
			return res, err
		}
		q += ` ORDER BY ` + col
		if f.Desc {
			q += ` DESC`
		}
	}
	if limit, offset, ok := f.LimitOffset(); ok {
		q += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return res, err
	}
	defer rows.Close()

	var (
		us  Users
		ids []int64
	)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return res, err
		}
		us = append(us, u)
		ids = append(ids, u.ID)
	}
	if err = rows.Err(); err != nil {
		return res, err
	}

	phones, err := r.phonesByUserIDs(ctx, ids)
	if err != nil {
		return res, err
	}

	return paging.PagedResult[*domain.User]{
		Items:      fromDBModels(us, phones),
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalCount: total,
	}, nil
}

func (r *Repository) phonesByUserIDs(ctx context.Context, ids []int64) (map[int64][]PhoneNumber, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, SelectPhoneNumbersByUserIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byUser := make(map[int64][]PhoneNumber)
	for rows.Next() {
		var p PhoneNumber
		if err = rows.Scan(&p.ID, &p.Number, &p.UserID); err != nil {
			return nil, err
		}
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	return byUser, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByID, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	phones, err := r.phonesByUserIDs(ctx, []int64{u.ID})
	if err != nil {
		return nil, err
	}

	return fromDBModel(u, phones[u.ID]), nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByUsername, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u, nil), nil
}

func (r *Repository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByDocumentNumber, documentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u, nil), nil
}

func (r *Repository) Create(ctx context.Context, req domain.User) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := scanUser(tx.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.Email, req.FirstName, req.LastName, req.DocumentNumber,
		req.DateOfBirth, int(req.Role), req.PasswordHash, (*int64)(req.ManagerID),
	))
	if err != nil {
		return nil, mapWriteError(err)
	}

	phones, err := insertPhones(ctx, tx, u.ID, req.PhoneNumbers)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(u, phones), nil
}

func (r *Repository) Update(ctx context.Context, req domain.User) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := scanUser(tx.QueryRow(
		ctx,
		UpdateUserByID,
		req.Username, req.Email, req.FirstName, req.LastName, req.DocumentNumber,
		req.DateOfBirth, int(req.Role), req.PasswordHash, (*int64)(req.ManagerID),
		int64(req.ID),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapWriteError(err)
	}

	// full overwrite: phone numbers are replaced, not merged
	if _, err = tx.Exec(ctx, DeletePhoneNumbersByUser, u.ID); err != nil {
		return nil, err
	}
	phones, err := insertPhones(ctx, tx, u.ID, req.PhoneNumbers)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(u, phones), nil
}

func (r *Repository) Delete(ctx context.Context, id domain.ID) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	u, err := scanUser(tx.QueryRow(ctx, SelectUserByID, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := tx.Query(ctx, SelectPhoneNumbersByUserID, u.ID)
	if err != nil {
		return nil, err
	}
	var phones []PhoneNumber
	for rows.Next() {
		var p PhoneNumber
		if err = rows.Scan(&p.ID, &p.Number, &p.UserID); err != nil {
			rows.Close()
			return nil, err
		}
		phones = append(phones, p)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx, DeletePhoneNumbersByUser, u.ID); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(ctx, DeleteUserByID, u.ID); err != nil {
		// manager_id FK is RESTRICT: the user is somebody's manager
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, ErrManagerReferenced
		}
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(u, phones), nil
}

func insertPhones(ctx context.Context, tx pgx.Tx, userID int64, phones domain.PhoneNumbers) ([]PhoneNumber, error) {
	out := make([]PhoneNumber, 0, len(phones))
	for _, p := range phones {
		var id int64
		if err := tx.QueryRow(ctx, InsertPhoneNumber, p.Number, userID).Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, PhoneNumber{ID: id, Number: p.Number, UserID: userID})
	}

	return out, nil
}

func mapWriteError(err error) error {
	switch {
	case postgres.IsPgUniqueViolation(err):
		switch postgres.ConstraintName(err) {
		case "users_document_number_key":
			return ErrDocumentNumberAlreadyExists
		default:
			return ErrUsernameAlreadyExists
		}
	case postgres.IsPgForeignKeyViolation(err):
		return ErrManagerNotFound
	}
	return err
}
