package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Service struct {
	jwtSecret string
	tokenTTL  time.Duration
}

func New(jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type Claims struct {
	Username       string `json:"username"`
	UserID         int64  `json:"id"`
	Role           string `json:"role"`
	LoginTimestamp int64  `json:"loginTimeStamp"`
	jwt.RegisteredClaims
}

func (s *Service) Generate(username string, userID int64, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:       username,
		UserID:         userID,
		Role:           role,
		LoginTimestamp: now.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
