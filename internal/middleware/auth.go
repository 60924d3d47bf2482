package middleware

import (
	"strings"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/logger"
	"chirpynosh_backend/pkg/apperrors"
	"chirpynosh_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const claimsKey = string(contextkeys.ClaimsContextKey)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c, codec)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		if claims == nil {
			abortUnauthorized(c, nil)
			return
		}
		attachClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a token is
// supplied but lets anonymous requests through. A token that is present but
// invalid is still rejected: a caller asserting an identity must prove it.
func OptionalAuthMiddleware(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		claims, err := claimsFromHeader(c, codec)
		if err != nil || claims == nil {
			abortUnauthorized(c, err)
			return
		}
		attachClaims(c, claims)
		c.Next()
	}
}

// RequireAny allows the request through when the caller's role grants at
// least one of the listed capabilities. Admin always passes.
func RequireAny(caps ...auth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}
		if !auth.RequireAny(claims.Role, caps...) {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetClaims returns the identity attached by the auth middlewares.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}

func GetUserID(c *gin.Context) string {
	claims, ok := GetClaims(c)
	if !ok {
		return ""
	}
	return claims.UserID
}

func claimsFromHeader(c *gin.Context, codec *auth.TokenCodec) (*auth.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, nil
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	return codec.Parse(tokenStr)
}

func attachClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
	ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
	c.Request = c.Request.WithContext(ctx)
}

func abortUnauthorized(c *gin.Context, err error) {
	appErr := apperrors.NewUnauthorizedError("Authorization header missing or invalid")
	if err != nil {
		switch err {
		case auth.ErrTokenExpired:
			appErr = apperrors.ErrTokenExpired
		default:
			appErr = apperrors.ErrInvalidToken
		}
	}
	apperrors.HandleError(c, appErr)
	c.Abort()
}
