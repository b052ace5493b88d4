package middleware

import (
	"context"
	"errors"
	"net/http"

	"taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Resolver is satisfied by service.SessionService.
type Resolver interface {
	Resolve(ctx context.Context, authorization string) (*domain.Identity, error)
}

// Session resolves the bearer token before the handler body runs and aborts
// with 401 on any failure.
func Session(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			AuthFailures.Inc()
			message := "unauthenticated"
			var appErr *domain.Error
			if errors.As(err, &appErr) {
				message = appErr.Message
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": domain.CodeUnauthenticated, "message": message},
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Session.
func IdentityFrom(c *gin.Context) (*domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*domain.Identity)
	return identity, ok
}
