package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

var validate = validator.New()

// parseBody deserializa y valida el body según los tags `validate` del DTO.
// Cualquier falla se reporta como entrada inválida antes de tocar estado.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.ErrInvalidInput
	}
	if err := validate.Struct(out); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}
