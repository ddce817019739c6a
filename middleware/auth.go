package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an issued admin token
const TokenTTL = 24 * time.Hour

// Claims contains the admin identity carried by our tokens
type Claims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SignToken issues a signed HS256 token for an admin with a fixed 24-hour expiry
func SignToken(secret string, id uint, username string) (string, error) {
	claims := Claims{
		ID:       id,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the embedded claims
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// RequireAuth is a middleware that will check the validity of our JWT.
// A missing Authorization header and an invalid/expired token report
// distinct messages, matching the API contract.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := ParseToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("admin_id", claims.ID)
		c.Set("admin_username", claims.Username)
		c.Next()
	}
}

// GetAdminID extracts the authenticated admin's ID from the Gin context
func GetAdminID(c *gin.Context) (uint, error) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_ADMIN_ID", Message: "Admin ID not found in context"}
	}

	id, ok := adminID.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_ADMIN_ID", Message: "Admin ID is not a uint"}
	}

	return id, nil
}

// GetAdminUsername extracts the authenticated admin's username from the Gin context
func GetAdminUsername(c *gin.Context) (string, error) {
	username, exists := c.Get("admin_username")
	if !exists {
		return "", &AuthError{Code: "MISSING_USERNAME", Message: "Admin username not found in context"}
	}

	name, ok := username.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_USERNAME", Message: "Admin username is not a string"}
	}

	return name, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
