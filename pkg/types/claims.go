package types

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Elevated bool   `json:"elevated"`
	jwt.RegisteredClaims
}
