package helpers

import (
	"fmt"
	"strings"

	"marketplace-service/internal/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalEmail  = "email_user"
)

func UserID(ctx *fiber.Ctx) int64 {
	id, _ := ctx.Locals(LocalUserID).(int64)
	return id
}

func UserRole(ctx *fiber.Ctx) string {
	role, _ := ctx.Locals(LocalRole).(string)
	return role
}

// ValidationMessage flattens validator errors into "field: rule" pairs.
func ValidationMessage(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ValidationError(err.Error())
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return errors.ValidationError(strings.Join(parts, ", "))
}
