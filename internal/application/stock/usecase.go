package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase consultas del libro de stock. Son proyecciones puras del libro:
// el restante y las banderas se derivan siempre de importado − exportado.
type UseCase struct {
	ledgerRepo       repository.StockLedgerRepository
	productRepo      repository.ProductRepository
	defaultThreshold decimal.Decimal
}

// NewUseCase construye el caso de uso. defaultThreshold se usa cuando el
// caller no envía umbral en la consulta de stock bajo.
func NewUseCase(ledgerRepo repository.StockLedgerRepository, productRepo repository.ProductRepository, defaultThreshold decimal.Decimal) *UseCase {
	return &UseCase{ledgerRepo: ledgerRepo, productRepo: productRepo, defaultThreshold: defaultThreshold}
}

// GetProductStock devuelve el stock agregado de un producto con desglose por
// color/talla.
func (uc *UseCase) GetProductStock(ctx context.Context, productID string) (*dto.ProductStockResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductStockResponse{
		ProductID: productID,
		Breakdown: make([]dto.StockEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Imported = resp.Imported.Add(e.ImportedQuantity)
		resp.ExportedTransferred = resp.ExportedTransferred.Add(e.ExportedTransferredQuantity)
		resp.Breakdown = append(resp.Breakdown, toEntryResponse(e))
	}
	resp.Remaining = resp.Imported.Sub(resp.ExportedTransferred)
	return resp, nil
}

// GetEntry devuelve los acumulados de una clave concreta (producto, color,
// talla opcional). Claves sin movimientos responden acumulados en cero.
func (uc *UseCase) GetEntry(ctx context.Context, key entity.StockKey) (*dto.StockEntryResponse, error) {
	if key.ProductID == "" || key.ColorID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(key.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entry, err := uc.ledgerRepo.Get(key)
	if err != nil {
		return nil, err
	}
	resp := toEntryResponse(entry)
	return &resp, nil
}

// LowStock devuelve las claves con restante por debajo del umbral. Umbral nulo
// usa el valor por defecto de configuración.
func (uc *UseCase) LowStock(ctx context.Context, threshold *decimal.Decimal) ([]dto.StockEntryResponse, error) {
	t := uc.defaultThreshold
	if threshold != nil {
		t = *threshold
	}
	entries, err := uc.ledgerRepo.ListLowStock(t)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

// OverExported devuelve las claves con restante negativo (se exportó más de lo
// importado).
func (uc *UseCase) OverExported(ctx context.Context) ([]dto.StockEntryResponse, error) {
	entries, err := uc.ledgerRepo.ListOverExported()
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func toEntryResponse(e *entity.StockLedgerEntry) dto.StockEntryResponse {
	return dto.StockEntryResponse{
		ProductID:           e.ProductID,
		Color:               e.ColorID,
		Size:                e.Size,
		Imported:            e.ImportedQuantity,
		ExportedTransferred: e.ExportedTransferredQuantity,
		Remaining:           e.RemainingQuantity(),
		OverExported:        e.IsOverExported(),
	}
}

func toEntryResponses(entries []*entity.StockLedgerEntry) []dto.StockEntryResponse {
	out := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}
