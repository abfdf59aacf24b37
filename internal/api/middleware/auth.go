package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/contactbook/contact-api/internal/api/metrics"
	"github.com/contactbook/contact-api/internal/core/domain"
)

// UserKey is the echo context key under which Auth stores the resolved user.
const UserKey = "user"

// TokenResolver maps a bearer token to the user currently holding it.
// ports.UserRepository satisfies it.
type TokenResolver interface {
	FindByToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the Authorization header to a user and injects it into the
// request context. The header value is accepted with or without a "Bearer "
// prefix. Every request performs a fresh store lookup; tokens are opaque and
// carry no claims of their own.
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenResolutionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			token := strings.TrimPrefix(header, "Bearer ")

			user, err := resolver.FindByToken(c.Request().Context(), token)
			if err != nil {
				if err == domain.ErrUserNotFound {
					metrics.TokenResolutionsTotal.WithLabelValues("invalid").Inc()
					return domain.ErrInvalidToken
				}
				return err
			}

			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()
			c.Set(UserKey, user)

			return next(c)
		}
	}
}
