package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/document"
	"github.com/jhoicas/Almacen-api/internal/application/prepayment"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DocumentUC   *document.UseCase
	StockUC      *stock.UseCase
	PrepaymentUC *prepayment.UseCase
	JWTSecret    string
}

// documentRoutes prefijos de rutas por tipo de documento.
var documentRoutes = []struct {
	prefix       string
	detailPrefix string
	docType      string
}{
	{"exports", "export-details", entity.DocumentTypeExport},
	{"transfers", "transfer-details", entity.DocumentTypeTransfer},
	{"imports", "import-details", entity.DocumentTypeImport},
	{"purchase-requests", "purchase-request-details", entity.DocumentTypePurchaseRequest},
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Todo el motor requiere Bearer Token (el motor confía en el actor)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	docHandler := NewDocumentHandler(deps.DocumentUC)
	for _, r := range documentRoutes {
		docs := protected.Group("/" + r.prefix)
		docs.Post("/", docHandler.Create(r.docType))
		docs.Get("/:id", docHandler.GetByID(r.docType))
		docs.Put("/:id/status", docHandler.TransitionStatus(r.docType))

		details := protected.Group("/" + r.detailPrefix)
		details.Post("/", docHandler.AddLine(r.docType))
		details.Put("/:id", docHandler.UpdateLine(r.docType))
		details.Delete("/:id", docHandler.RemoveLine(r.docType))
	}

	// Lecturas del libro de stock
	products := protected.Group("/products")
	stockHandler := NewStockHandler(deps.StockUC)
	products.Get("/low-stock", stockHandler.LowStock)
	products.Get("/over-exported", stockHandler.OverExported)
	products.Get("/stock/:id", stockHandler.ProductStockBreakdown)
	products.Get("/:id/stock", stockHandler.ProductStock)

	// Anticipos
	prepayments := protected.Group("/prepayments")
	prepaymentHandler := NewPrepaymentHandler(deps.PrepaymentUC)
	prepayments.Post("/", prepaymentHandler.Create)
	prepayments.Get("/:id", prepaymentHandler.GetByID)
	prepayments.Put("/:id/status", prepaymentHandler.TransitionStatus)
}
