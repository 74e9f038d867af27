package middleware

import (
	"context"
	"fmt"
	"strings"

	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/helpers"
	"marketplace-service/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// AccountChecker reports whether a user may still act, e.g. is not suspended.
type AccountChecker interface {
	IsActive(ctx context.Context, userID int64) (bool, error)
}

type Middleware struct {
	Log      *otelzap.Logger
	Token    *token.Manager
	Accounts AccountChecker
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing bearer token"))
	}

	claims, err := m.Token.Parse(strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse token subject: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	if m.Accounts != nil {
		active, err := m.Accounts.IsActive(ctx.UserContext(), userID)
		if err != nil {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error check account: %v", err))
			return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
		}
		if !active {
			return helpers.RespError(ctx, m.Log, errors.Forbidden("account suspended"))
		}
	}

	ctx.Locals(helpers.LocalUserID, userID)
	ctx.Locals(helpers.LocalRole, claims.Role)
	ctx.Locals(helpers.LocalEmail, claims.Email)

	return ctx.Next()
}

// RequireRole must run after ValidateToken.
func (m *Middleware) RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := helpers.UserRole(ctx)
		for _, r := range roles {
			if r == role {
				return ctx.Next()
			}
		}
		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("role %q denied on %s", role, ctx.Path()))
		return helpers.RespError(ctx, m.Log, errors.Forbidden("insufficient role"))
	}
}
