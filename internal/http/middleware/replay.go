// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file handles the Idempotency-Key header on submission creation. The
// detector validates the key, stashes it for the handler, and checks whether
// a completed submission already exists for (user, evaluation, key). A hit
// marks the request so the rate limiter serves the replay without consuming
// tokens: a client retrying a finished evaluation must never be pushed into
// 429 territory by its own retries.
package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the request header clients send on submission
// creation so retries of the same finish can be deduplicated.
const HeaderIdempotencyKey = "Idempotency-Key"

const (
	// ctxKeyIdemKey stashes the validated idempotency key.
	ctxKeyIdemKey = "idemKey"
	// ctxKeyRateBypass marks a detected replay; the rate limiter skips
	// token accounting for requests carrying it.
	ctxKeyRateBypass = "rateBypass"

	// maxIdemKeyLen caps the accepted key length.
	maxIdemKeyLen = 200
)

// idemKeyPattern restricts keys to an RFC 7230-ish token alphabet.
var idemKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// ReplayLookup reports whether a still-valid submission key exists for
// (userID, evaluationID, key) at the given time. Lookup failures count as
// "no replay"; they must not block normal processing.
type ReplayLookup func(ctx context.Context, userID, evaluationID, key string, now time.Time) bool

// ReplayDetector validates the Idempotency-Key header when present and, via
// lookup, flags requests that replay an already-recorded submission.
//
// The detector runs before authentication (it sits ahead of the rate limiter,
// which guards the whole surface), so it reads the caller's identity straight
// from the bearer token using the same secret RequireAuth verifies with. An
// absent or invalid token simply means no replay check; RequireAuth rejects
// the request later.
//
// Behavior:
//   - No header: no-op.
//   - Malformed header: 400 with the standard error envelope.
//   - Valid header: key stashed (see IdempotencyKeyFrom); on a lookup hit the
//     rate-limit bypass flag is set.
func ReplayDetector(secret []byte, lookup ReplayLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdemKeyLen || !idemKeyPattern.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "bad_idempotency_key",
				"message":    "invalid Idempotency-Key",
			})
			return
		}
		c.Set(ctxKeyIdemKey, key)

		if lookup != nil {
			if uid, ok := bearerUID(c, secret); ok {
				// Submission routes carry the evaluation id as :id.
				if evalID := c.Param("id"); evalID != "" {
					if lookup(c.Request.Context(), uid, evalID, key, time.Now().UTC()) {
						c.Set(ctxKeyRateBypass, true)
					}
				}
			}
		}
		c.Next()
	}
}

// IdempotencyKeyFrom returns the idempotency key for this request: the
// validated key stashed by ReplayDetector, or the raw header when the
// detector is not installed.
func IdempotencyKeyFrom(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyIdemKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return c.GetHeader(HeaderIdempotencyKey)
}

// bearerUID extracts the user id from a valid bearer token, if any.
func bearerUID(c *gin.Context, secret []byte) (string, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	claims, err := ParseToken(secret, strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
	if err != nil {
		return "", false
	}
	return claims.UID, true
}
