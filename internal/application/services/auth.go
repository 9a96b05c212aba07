package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"employee-directory-api/internal/application/ports"
	"employee-directory-api/internal/domain/employee"
	"employee-directory-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,

) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateToken(u *employee.User, requestPassword string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.Generate(u.Username, int64(u.ID), u.Role.String())
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
