// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication. Tokens are HS256 JWTs
// carrying the user's id, display name, and role; they are minted at login and
// verified on every protected route. The token is a session carrier only, it
// grants nothing the stored role does not.
package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/evalai/evalai-backend/internal/domain"
)

const (
	// ctxKeyUserID is the Gin context key for the authenticated user id. The
	// logging and rate-limit middleware read the same key.
	ctxKeyUserID = "userID"
	// ctxKeyClaims is the Gin context key for the full token claims.
	ctxKeyClaims = "authClaims"
)

// Claims is the JWT payload minted at login.
type Claims struct {
	UID  string          `json:"uid"`
	Name string          `json:"name"`
	Role domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// SignToken mints an HS256 token for the given identity.
func SignToken(secret []byte, uid, name string, role domain.UserRole, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:  uid,
		Name: name,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies tok and returns its claims.
func ParseToken(secret []byte, tok string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{},
		func(*jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// RequireAuth returns a middleware that rejects requests without a valid
// bearer token and stores the claims (and user id) in the Gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		claims, err := ParseToken(secret, strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		c.Set(ctxKeyUserID, claims.UID)
		c.Set(ctxKeyClaims, claims)
		c.Next()
	}
}

// RequireRole returns a middleware that allows only the listed roles. It must
// run after RequireAuth.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[domain.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "forbidden",
				"message":    "insufficient role",
			})
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the authenticated claims, or nil when the request did not
// pass RequireAuth.
func ClaimsFrom(c *gin.Context) *Claims {
	if v, ok := c.Get(ctxKeyClaims); ok {
		if cl, ok := v.(*Claims); ok {
			return cl
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       "unauthorized",
		"message":    msg,
	})
}
