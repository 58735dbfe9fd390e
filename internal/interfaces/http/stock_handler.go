package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// StockHandler consultas del libro de stock (solo lectura).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ProductStock godoc
// @Summary      Stock agregado de un producto con desglose por color/talla
// @Description  Con ?color= (y ?size= opcional) responde solo la clave pedida.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        color  query  string  false  "Color de la clave"
// @Param        size   query  string  false  "Talla de la clave"
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *StockHandler) ProductStock(c *fiber.Ctx) error {
	if color := c.Query("color"); color != "" {
		key := entity.StockKey{ProductID: c.Params("id"), ColorID: color, Size: c.Query("size")}
		entry, err := h.uc.GetEntry(c.Context(), key)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(entry)
	}
	resp, err := h.uc.GetProductStock(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// ProductStockBreakdown godoc
// @Summary      Desglose de stock por color/talla de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/stock/{id} [get]
func (h *StockHandler) ProductStockBreakdown(c *fiber.Ctx) error {
	resp, err := h.uc.GetProductStock(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp.Breakdown)
}

// LowStock godoc
// @Summary      Claves con restante por debajo del umbral
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  string  false  "Umbral; vacío usa el valor de configuración"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products/low-stock [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	var threshold *decimal.Decimal
	if raw := c.Query("threshold"); raw != "" {
		t, err := decimal.NewFromString(raw)
		if err != nil {
			return errorResponse(c, domain.ErrInvalidInput)
		}
		threshold = &t
	}
	list, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "entries": list})
}

// OverExported godoc
// @Summary      Claves con restante negativo (sobre-exportación)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products/over-exported [get]
func (h *StockHandler) OverExported(c *fiber.Ctx) error {
	list, err := h.uc.OverExported(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "entries": list})
}
