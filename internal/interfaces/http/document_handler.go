package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/document"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

// DocumentHandler maneja las peticiones HTTP del motor de documentos.
// Cada método devuelve un fiber.Handler cerrado sobre el tipo de documento,
// así los cuatro grupos de rutas comparten la misma implementación.
type DocumentHandler struct {
	uc *document.UseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *document.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear documento (EXPORT/TRANSFER/IMPORT/PURCHASE_REQUEST)
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "counterparty_id y parámetros según el tipo"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/exports [post]
func (h *DocumentHandler) Create(docType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := GetActorID(c)
		if actorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		var in dto.CreateDocumentRequest
		if err := parseBody(c, &in); err != nil {
			return errorResponse(c, err)
		}
		resp, err := h.uc.CreateDocument(c.Context(), actorID, docType, in)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// GetByID godoc
// @Summary      Obtener documento con detalle y totales
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/exports/{id} [get]
func (h *DocumentHandler) GetByID(docType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp, err := h.uc.GetDocument(c.Context(), docType, c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(resp)
	}
}

// AddLine godoc
// @Summary      Agregar línea de detalle a un documento
// @Description  409 por combinación duplicada, stock insuficiente o estado inmutable.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddLineRequest  true  "document_id, product_id, color, size (traslados), quantity, unit_price"
// @Success      201   {object}  dto.AddLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/export-details [post]
func (h *DocumentHandler) AddLine(docType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := GetActorID(c)
		if actorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		var in dto.AddLineRequest
		if err := parseBody(c, &in); err != nil {
			return errorResponse(c, err)
		}
		resp, err := h.uc.AddLine(c.Context(), actorID, docType, in)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// UpdateLine godoc
// @Summary      Modificar una línea de detalle
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.AddLineResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/export-details/{id} [put]
func (h *DocumentHandler) UpdateLine(docType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := GetActorID(c)
		if actorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		var in dto.UpdateLineRequest
		if err := parseBody(c, &in); err != nil {
			return errorResponse(c, err)
		}
		resp, err := h.uc.UpdateLine(c.Context(), actorID, docType, c.Params("id"), in)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(resp)
	}
}

// RemoveLine godoc
// @Summary      Eliminar una línea de detalle
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DocumentResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/export-details/{id} [delete]
func (h *DocumentHandler) RemoveLine(docType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := GetActorID(c)
		if actorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		resp, err := h.uc.RemoveLine(c.Context(), actorID, docType, c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(resp)
	}
}

// TransitionStatus godoc
// @Summary      Transicionar el estado de un documento
// @Description  409 ILLEGAL_TRANSITION si la arista no está en la tabla; repetir el estado actual es no-op.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransitionStatusRequest  true  "status destino"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/exports/{id}/status [put]
func (h *DocumentHandler) TransitionStatus(docType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := GetActorID(c)
		if actorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		var in dto.TransitionStatusRequest
		if err := parseBody(c, &in); err != nil {
			return errorResponse(c, err)
		}
		resp, err := h.uc.TransitionStatus(c.Context(), actorID, docType, c.Params("id"), in.Status)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(resp)
	}
}
