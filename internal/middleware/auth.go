package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brickfolio/property-portal/internal/modules/model"
	"github.com/brickfolio/property-portal/internal/modules/serializer"
	"github.com/brickfolio/property-portal/internal/modules/service"
	"github.com/brickfolio/property-portal/internal/pkg/security"
)

const principalKey = "principal"

// UserFinder is the slice of the user repository authentication needs.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// Authenticate resolves the bearer token to a stored user and aborts with
// 401 on any failure: missing header, bad signature, expiry, or a subject
// that no longer exists. The handler chain never runs unauthenticated.
func Authenticate(codec *security.TokenCodec, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr())
			return
		}

		subject, err := codec.Decode(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr())
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr())
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.InternalErr(err))
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// OptionalAuth resolves a principal when a valid token is supplied but lets
// anonymous requests through; downstream policy decides what anonymity may
// do.
func OptionalAuth(codec *security.TokenCodec, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			if subject, err := codec.Decode(raw); err == nil {
				if user, err := users.GetByEmail(c.Request.Context(), subject); err == nil {
					c.Set(principalKey, user)
				}
			}
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated principal holds one
// of the allowed roles. Must sit behind Authenticate.
func RequireRole(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.Authorize(CurrentUser(c), allowed...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr())
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated principal, or nil on anonymous
// requests.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
