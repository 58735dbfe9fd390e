package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/prepayment"
)

// PrepaymentHandler maneja anticipos de cliente.
type PrepaymentHandler struct {
	uc *prepayment.UseCase
}

// NewPrepaymentHandler construye el handler.
func NewPrepaymentHandler(uc *prepayment.UseCase) *PrepaymentHandler {
	return &PrepaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un anticipo de cliente
// @Tags         prepayments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrepaymentRequest  true  "customer_id, amount_money"
// @Success      201   {object}  dto.PrepaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prepayments [post]
func (h *PrepaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrepaymentRequest
	if err := parseBody(c, &in); err != nil {
		return errorResponse(c, err)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener un anticipo por ID
// @Tags         prepayments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PrepaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prepayments/{id} [get]
func (h *PrepaymentHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// TransitionStatus godoc
// @Summary      Transicionar el estado de un anticipo
// @Tags         prepayments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePrepaymentStatusRequest  true  "status destino"
// @Success      200   {object}  dto.PrepaymentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/prepayments/{id}/status [put]
func (h *PrepaymentHandler) TransitionStatus(c *fiber.Ctx) error {
	var in dto.UpdatePrepaymentStatusRequest
	if err := parseBody(c, &in); err != nil {
		return errorResponse(c, err)
	}
	resp, err := h.uc.TransitionStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
