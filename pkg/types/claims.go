package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued by /api-token-auth/.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
