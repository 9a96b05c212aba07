package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-directory-api/internal/application/ports"
	"employee-directory-api/internal/interface/api/rest/dto/employee"
	"employee-directory-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserDirectoryService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserDirectoryService,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
	}

	r.POST(RouteUserLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req employee.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	token, err := ac.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		ac.logger.Warn("Login() rejected", zap.String("userName", req.Username), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
