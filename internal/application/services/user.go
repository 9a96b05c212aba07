package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"employee-directory-api/internal/application/ports"
	domain "employee-directory-api/internal/domain/employee"
	employeeDB "employee-directory-api/internal/infrastructure/db/postgres/employee"
	"employee-directory-api/internal/infrastructure/mq"
	"employee-directory-api/internal/interface/api/rest/dto/employee"
	"employee-directory-api/pkg/paging"
)

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrMissingRoleClaim = errors.New("caller has no role claim")
	ErrRoleNotAllowed   = errors.New("cannot assign a role higher than the caller's own")
)

type UserDirectoryService struct {
	userRepository domain.Repository
	auth           ports.Auth
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserDirectoryService(
	userRepository domain.Repository,
	auth ports.Auth,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserDirectoryService {
	return &UserDirectoryService{
		userRepository: userRepository,
		auth:           auth,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// authorizeRoleAssignment caps the role a new employee may be given at the
// caller's own tier. Admin is a sentinel that outranks everything.
func authorizeRoleAssignment(caller ports.Claims, requested domain.Role) error {
	if caller.Role == "" {
		return ErrMissingRoleClaim
	}

	callerRole, err := domain.ParseRole(caller.Role)
	if err != nil {
		return fmt.Errorf("invalid role claim %q: %w", caller.Role, err)
	}

	if requested.Rank() > callerRole.Rank() {
		return ErrRoleNotAllowed
	}

	return nil
}

func (us *UserDirectoryService) Create(ctx context.Context, u domain.User, password string, caller ports.Claims) (*domain.User, error) {
	if err := authorizeRoleAssignment(caller, u.Role); err != nil {
		return nil, err
	}

	// two separate probes so each duplicate gets its own message; the
	// unique indices remain the backstop under concurrent creates
	existing, err := us.userRepository.GetByDocumentNumber(ctx, u.DocumentNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, employeeDB.ErrDocumentNumberAlreadyExists
	}
	existing, err = us.userRepository.GetByUsername(ctx, u.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, employeeDB.ErrUsernameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hash)

	uRet, err := us.userRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	us.emit(http.MethodPost, uRet)
	us.mCounter.WithLabelValues("employee_created_total").Inc()

	return uRet, nil
}

func (us *UserDirectoryService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := us.userRepository.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	return us.auth.GenerateToken(u, password)
}

func (us *UserDirectoryService) Update(ctx context.Context, id domain.ID, u domain.User, password string) (*domain.User, error) {
	existing, err := us.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.ID = id
	u.PasswordHash = string(hash)

	uRet, err := us.userRepository.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, ErrUserNotFound
	}

	us.emit(http.MethodPut, uRet)
	us.mCounter.WithLabelValues("employee_updated_total").Inc()

	return uRet, nil
}

func (us *UserDirectoryService) Remove(ctx context.Context, id domain.ID) (*domain.User, error) {
	uRet, err := us.userRepository.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, ErrUserNotFound
	}

	us.emit(http.MethodDelete, uRet)
	us.mCounter.WithLabelValues("employee_deleted_total").Inc()

	return uRet, nil
}

func (us *UserDirectoryService) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	return us.userRepository.GetByID(ctx, id)
}

func (us *UserDirectoryService) GetList(ctx context.Context, f domain.Filter) (paging.PagedResult[*domain.User], error) {
	return us.userRepository.GetList(ctx, f)
}

func (us *UserDirectoryService) emit(method string, u *domain.User) {
	if u == nil {
		return
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  int64(u.ID),
		Payload: employee.ToResponse(*u),
	}
}
