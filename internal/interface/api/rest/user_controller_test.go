package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-directory-api/internal/application/ports"
	"employee-directory-api/internal/application/services"
	domain "employee-directory-api/internal/domain/employee"
	employeeDB "employee-directory-api/internal/infrastructure/db/postgres/employee"
	jwtSvc "employee-directory-api/internal/infrastructure/jwt"
	"employee-directory-api/internal/interface/api/rest/dto/employee"
	"employee-directory-api/pkg/paging"
)

type FakeUserDirectoryService struct {
	CreateFunc  func(ctx context.Context, u domain.User, password string, caller ports.Claims) (*domain.User, error)
	LoginFunc   func(ctx context.Context, username, password string) (string, error)
	UpdateFunc  func(ctx context.Context, id domain.ID, u domain.User, password string) (*domain.User, error)
	RemoveFunc  func(ctx context.Context, id domain.ID) (*domain.User, error)
	GetByIDFunc func(ctx context.Context, id domain.ID) (*domain.User, error)
	GetListFunc func(ctx context.Context, f domain.Filter) (paging.PagedResult[*domain.User], error)
}

func (f *FakeUserDirectoryService) Create(ctx context.Context, u domain.User, password string, caller ports.Claims) (*domain.User, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, u, password, caller)
}
func (f *FakeUserDirectoryService) Login(ctx context.Context, username, password string) (string, error) {
	if f.LoginFunc == nil {
		return "", errors.New("not used")
	}
	return f.LoginFunc(ctx, username, password)
}
func (f *FakeUserDirectoryService) Update(ctx context.Context, id domain.ID, u domain.User, password string) (*domain.User, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, id, u, password)
}
func (f *FakeUserDirectoryService) Remove(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.RemoveFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RemoveFunc(ctx, id)
}
func (f *FakeUserDirectoryService) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.GetByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetByIDFunc(ctx, id)
}
func (f *FakeUserDirectoryService) GetList(ctx context.Context, f2 domain.Filter) (paging.PagedResult[*domain.User], error) {
	if f.GetListFunc == nil {
		return paging.PagedResult[*domain.User]{}, errors.New("not used")
	}
	return f.GetListFunc(ctx, f2)
}

func setupRouter(t *testing.T, us ports.UserDirectoryService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	j := jwtSvc.New("test-secret", time.Hour)

	NewUserController(r, us, logger, j)
	NewAuthController(r, logger, us)

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validEmployeeRequest() employee.Request {
	return employee.Request{
		Username:       "john.doe",
		Password:       "Sup3r$ecret",
		RePassword:     "Sup3r$ecret",
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john.doe@example.com",
		DocumentNumber: "1234567890",
		PhoneNumbers:   []employee.PhoneNumberRequest{{Number: "+33612345678"}},
		DateOfBirth:    time.Now().AddDate(-25, 0, 0).Format("2006-01-02"),
		Role:           "Employee",
	}
}

func someDomainUser() *domain.User {
	return &domain.User{
		ID:             1,
		Username:       "john.doe",
		Email:          "john.doe@example.com",
		FirstName:      "John",
		LastName:       "Doe",
		DocumentNumber: "1234567890",
		DateOfBirth:    time.Now().AddDate(-25, 0, 0),
		Role:           domain.RoleEmployee,
		PhoneNumbers:   domain.PhoneNumbers{{ID: 1, Number: "+33612345678", UserID: 1}},
	}
}

func SignJWT(secret, username string, userID int64, role string, exp time.Duration) (string, error) {
	type Claims struct {
		Username string `json:"username"`
		UserID   int64  `json:"id"`
		Role     string `json:"role"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		Username: username,
		UserID:   userID,
		Role:     role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func authHeader(t *testing.T, role string) map[string]string {
	t.Helper()
	tok, err := SignJWT("test-secret", "boss", 42, role, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func TestUserController_CreateUserHandler(t *testing.T) {
	validReq := validEmployeeRequest()

	tests := []struct {
		name       string
		headers    map[string]string
		body       any
		mockUS     func() ports.UserDirectoryService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing auth header",
			headers:    nil,
			body:       validReq,
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name: "401 invalid format",
			headers: map[string]string{
				"Authorization": "Token something",
			},
			body:       validReq,
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token format",
		},
		{
			name: "401 invalid token signature",
			headers: func() map[string]string {
				tok, _ := SignJWT("other-secret", "boss", 42, "Director", time.Hour)
				return map[string]string{"Authorization": "Bearer " + tok}
			}(),
			body:       validReq,
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token",
		},
		{
			name:       "400 invalid JSON",
			body:       "{bad json",
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "400 validation error",
			body: employee.Request{
				Username: "x",
				Password: "short",
				Email:    "bad",
			},
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name: "400 duplicate document number",
			body: validReq,
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					CreateFunc: func(ctx context.Context, du domain.User, password string, caller ports.Claims) (*domain.User, error) {
						return nil, employeeDB.ErrDocumentNumberAlreadyExists
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "Employee with this document number already exists",
		},
		{
			name: "400 role above caller",
			body: validReq,
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					CreateFunc: func(ctx context.Context, du domain.User, password string, caller ports.Claims) (*domain.User, error) {
						return nil, services.ErrRoleNotAllowed
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    services.ErrRoleNotAllowed.Error(),
		},
		{
			name: "201 success",
			body: validReq,
			mockUS: func() ports.UserDirectoryService {
				u := someDomainUser()
				return &FakeUserDirectoryService{
					CreateFunc: func(ctx context.Context, du domain.User, password string, caller ports.Claims) (*domain.User, error) {
						assert.Equal(t, validReq.Username, du.Username)
						assert.Equal(t, validReq.Password, password)
						assert.Equal(t, "Director", caller.Role)
						assert.Equal(t, int64(42), caller.UserID)
						return u, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())

			headers := tt.headers
			if headers == nil && tt.wantStatus != http.StatusUnauthorized {
				headers = authHeader(t, "Director")
			}

			rr := doReq(t, r, http.MethodPost, RouteUser, tt.body, headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantStatus == http.StatusCreated {
				var resp employee.Response
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, int64(1), resp.ID)
				assert.NotContains(t, rr.Body.String(), "password")
			}
		})
	}
}

func TestUserController_GetUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		mockUS     func() ports.UserDirectoryService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid id",
			userID:     "not-a-number",
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "id must be a positive integer",
		},
		{
			name:   "400 not found",
			userID: "7",
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					GetByIDFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "User not found",
		},
		{
			name:   "400 service error",
			userID: "7",
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					GetByIDFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "db error",
		},
		{
			name:   "200 success",
			userID: "1",
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					GetByIDFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
						assert.Equal(t, domain.ID(1), id)
						return someDomainUser(), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodGet, "/user/"+tt.userID, nil, authHeader(t, "Employee"))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_GetUsersHandler(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		mockUS     func() ports.UserDirectoryService
		wantStatus int
		wantErr    string
	}{
		{
			name:  "400 unknown sort field",
			query: "?sortBy=passwordHash",
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					GetListFunc: func(ctx context.Context, f domain.Filter) (paging.PagedResult[*domain.User], error) {
						return paging.PagedResult[*domain.User]{}, errors.New(`unknown sort field "passwordHash"`)
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    `unknown sort field "passwordHash"`,
		},
		{
			name:       "400 bad managerId",
			query:      "?managerId=abc",
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "managerId must be an integer",
		},
		{
			name:  "200 paged metadata",
			query: "?page=2&pageSize=10&sortBy=username",
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					GetListFunc: func(ctx context.Context, f domain.Filter) (paging.PagedResult[*domain.User], error) {
						assert.Equal(t, 2, f.Page)
						assert.Equal(t, 10, f.PageSize)
						assert.Equal(t, "username", f.SortBy)
						return paging.PagedResult[*domain.User]{
							Items:      []*domain.User{someDomainUser()},
							Page:       2,
							PageSize:   10,
							TotalCount: 25,
						}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodGet, RouteUserList+tt.query, nil, authHeader(t, "Employee"))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantStatus == http.StatusOK {
				var resp employee.PagedResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, 2, resp.Page)
				assert.Equal(t, 10, resp.PageSize)
				assert.Equal(t, 25, resp.TotalCount)
				assert.True(t, resp.HasNextPage)
				assert.True(t, resp.HasPreviousPage)
				assert.Len(t, resp.Items, 1)
			}
		})
	}
}

func TestUserController_UpdateUserHandler(t *testing.T) {
	validReq := validEmployeeRequest()

	tests := []struct {
		name       string
		userID     string
		body       any
		mockUS     func() ports.UserDirectoryService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid id",
			userID:     "0",
			body:       validReq,
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "id must be a positive integer",
		},
		{
			name:       "400 invalid JSON",
			userID:     "1",
			body:       "{bad json",
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:   "400 not found",
			userID: "99",
			body:   validReq,
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					UpdateFunc: func(ctx context.Context, id domain.ID, u domain.User, password string) (*domain.User, error) {
						return nil, services.ErrUserNotFound
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "User not found",
		},
		{
			name:   "200 success",
			userID: "1",
			body:   validReq,
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					UpdateFunc: func(ctx context.Context, id domain.ID, u domain.User, password string) (*domain.User, error) {
						assert.Equal(t, domain.ID(1), id)
						assert.Equal(t, validReq.Password, password)
						out := someDomainUser()
						out.FirstName = u.FirstName
						return out, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodPut, "/user/"+tt.userID, tt.body, authHeader(t, "Director"))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestUserController_DeleteUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		mockUS     func() ports.UserDirectoryService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid id",
			userID:     "-1",
			mockUS:     func() ports.UserDirectoryService { return &FakeUserDirectoryService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "id must be a positive integer",
		},
		{
			name:   "400 not found",
			userID: "99",
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					RemoveFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
						return nil, services.ErrUserNotFound
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "User not found",
		},
		{
			name:   "400 still referenced as manager",
			userID: "1",
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					RemoveFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
						return nil, employeeDB.ErrManagerReferenced
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    employeeDB.ErrManagerReferenced.Error(),
		},
		{
			name:   "204 success",
			userID: "1",
			mockUS: func() ports.UserDirectoryService {
				return &FakeUserDirectoryService{
					RemoveFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
						assert.Equal(t, domain.ID(1), id)
						return someDomainUser(), nil
					},
				}
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockUS())
			rr := doReq(t, r, http.MethodDelete, "/user/"+tt.userID, nil, authHeader(t, "Director"))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}
