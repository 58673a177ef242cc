package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aharewards/aha-api/internal/db"
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidSubject is returned when the sub claim is not a user ID
	ErrInvalidSubject = errors.New("invalid subject claim")
)

// Claims is the expected shape of a Supabase access token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// validateToken parses and verifies an HS256 Supabase JWT and returns the
// user ID from the sub claim.
func validateToken(tokenString, secret string) (uuid.UUID, *Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, nil, ErrInvalidSubject
	}
	return userID, claims, nil
}

// EnsureValidToken is a middleware that validates the Supabase JWT in the
// Authorization header and resolves the caller's profile. Sets userID,
// userEmail and userRole on the gin context.
func EnsureValidToken(queries db.Querier, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authentication provided"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		userID, claims, err := validateToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		// The profile row carries the application role; the token's role
		// claim is Supabase's postgres role, not ours.
		profile, err := queries.GetProfile(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		c.Set("userID", userID.String())
		c.Set("userEmail", claims.Email)
		c.Set("userRole", profile.Role)
		c.Next()
	}
}

// RequireRoles is a middleware that checks if the authenticated user holds
// one of the required roles. Must run after EnsureValidToken.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("userRole")
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// GetUserID returns the authenticated user's ID from the gin context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	idStr := c.GetString("userID")
	if idStr == "" {
		return uuid.Nil, errors.New("user not authenticated")
	}
	return uuid.Parse(idStr)
}
