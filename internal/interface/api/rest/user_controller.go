package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-directory-api/internal/application/ports"
	"employee-directory-api/internal/infrastructure/jwt"
	"employee-directory-api/internal/interface/api/rest/dto/employee"
	"employee-directory-api/internal/interface/api/rest/middleware"
	"employee-directory-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserDirectoryService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserDirectoryService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(jwtService)
	r.POST(RouteUser, auth, uc.CreateUserHandler)
	r.GET(RouteUserList, auth, uc.GetUsersHandler)
	r.GET(RouteUserByID, auth, uc.GetUserHandler)
	r.PUT(RouteUserByID, auth, uc.UpdateUserHandler)
	r.DELETE(RouteUserByID, auth, uc.DeleteUserHandler)

	return uc
}

// callerClaims rebuilds the caller's identity from what the auth
// middleware stored on the request context.
func callerClaims(c *gin.Context) ports.Claims {
	var claims ports.Claims
	if v, ok := c.Get(middleware.CtxUsername); ok {
		claims.Username, _ = v.(string)
	}
	if v, ok := c.Get(middleware.CtxUserID); ok {
		claims.UserID, _ = v.(int64)
	}
	if v, ok := c.Get(middleware.CtxUserRole); ok {
		claims.Role, _ = v.(string)
	}
	return claims
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req employee.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain, err := employee.ToDomainUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.Create(c.Request.Context(), uDomain, req.Password, callerClaims(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		uc.logger.Warn("Create() rejected", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, employee.ToResponse(*u))
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	filter, err := validator.ParseFilter(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := uc.userService.GetList(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		uc.logger.Error("GetList() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, employee.ToPagedResponse(users))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := uc.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		uc.logger.Error("GetByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, employee.ToResponse(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req employee.Request
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	uDomain, err := employee.ToDomainUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.Update(c.Request.Context(), id, uDomain, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		uc.logger.Warn("Update() rejected", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, employee.ToResponse(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err = uc.userService.Remove(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		uc.logger.Warn("Remove() rejected", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
