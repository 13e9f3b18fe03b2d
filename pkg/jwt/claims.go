package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
