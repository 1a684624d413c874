package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims represents the JWT payload of bearer tokens accepted by the API.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
