package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"snapline/internal/core/session"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// JWTAuthMiddleware validates the Bearer token and stores the acting user's
// session in the gin context for downstream handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims := &session.Claims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(sessionKey, session.Session{
			UserID:   claims.Subject,
			Username: claims.Username,
		})
		c.Next()
	}
}

// SessionFromContext returns the session stored by JWTAuthMiddleware.
func SessionFromContext(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}
