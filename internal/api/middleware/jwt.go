package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/linskybing/clientdesk/internal/config"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/linskybing/clientdesk/pkg/response"
	"github.com/linskybing/clientdesk/pkg/types"
	"github.com/linskybing/clientdesk/pkg/utils"
	"gorm.io/gorm"
)

// Accepted Authorization schemes, matched case-insensitively.
var authSchemes = map[string]bool{"bearer": true, "token": true}

var ErrMissingToken = errors.New("authentication credentials were not provided")

// JWT issues and verifies HS256 access tokens.
type JWT struct {
	key    []byte
	issuer string
	ttl    time.Duration
	users  repository.UserRepo
}

func NewJWT(cfg *config.Config, users repository.UserRepo) *JWT {
	return &JWT{
		key:    []byte(cfg.JwtSecret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		users:  users,
	}
}

// GenerateToken issues a signed token for the user.
func (j *JWT) GenerateToken(userID uint, username string) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.key)
}

// ParseToken validates signature, issuer and expiry and extracts claims.
func (j *JWT) ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractToken reads "<scheme> <token>" from the Authorization header.
func ExtractToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !authSchemes[strings.ToLower(parts[0])] {
		return "", errors.New("authorization header format must be Bearer {token}")
	}
	return parts[1], nil
}

// JWTAuthMiddleware rejects the request with 401 unless it carries a valid
// token whose user still exists. A failed user lookup is a 500. Claims are
// stored under utils.ClaimsKey.
func (j *JWT) JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := ExtractToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}

		claims, err := j.ParseToken(tokenStr)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: msg})
			return
		}

		if _, err := j.users.GetUserByID(claims.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "user not found"})
				return
			}
			slog.Error("token user lookup failed", "user_id", claims.UserID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
			return
		}

		c.Set(utils.ClaimsKey, claims)
		c.Next()
	}
}
