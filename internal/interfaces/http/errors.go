package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// errorResponse mapea errores de dominio a códigos HTTP:
// 400 entrada inválida, 404 referencia desconocida, 409 conflictos de
// unicidad/stock/estado/transición, 500 lo demás.
func errorResponse(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrDuplicateCombination:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_COMBINATION", Message: "combinación producto/color/talla ya existe en el documento"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case domain.ErrInvalidState:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "el estado del documento no permite modificar líneas"})
	case domain.ErrIllegalTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ILLEGAL_TRANSITION", Message: "transición de estado no permitida"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
