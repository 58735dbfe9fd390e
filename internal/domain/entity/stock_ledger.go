package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockKey identifica una unidad de inventario rastreable: producto × color × talla opcional.
type StockKey struct {
	ProductID string
	ColorID   string
	Size      string // vacío cuando no aplica
}

// StockLedgerEntry acumula, por clave, las cantidades importadas y
// exportadas/trasladadas. El restante es siempre derivado, nunca almacenado
// de forma independiente.
type StockLedgerEntry struct {
	ProductID                   string
	ColorID                     string
	Size                        string
	ImportedQuantity            decimal.Decimal
	ExportedTransferredQuantity decimal.Decimal
	UpdatedAt                   time.Time
}

// Key devuelve la clave compuesta de la entrada.
func (e *StockLedgerEntry) Key() StockKey {
	return StockKey{ProductID: e.ProductID, ColorID: e.ColorID, Size: e.Size}
}

// RemainingQuantity = importado − exportado/trasladado. Negativo marca sobre-exportación.
func (e *StockLedgerEntry) RemainingQuantity() decimal.Decimal {
	return e.ImportedQuantity.Sub(e.ExportedTransferredQuantity)
}

// IsOverExported indica que se exportó más de lo importado.
func (e *StockLedgerEntry) IsOverExported() bool {
	return e.RemainingQuantity().IsNegative()
}

// IsLowStock indica que el restante está por debajo del umbral dado.
func (e *StockLedgerEntry) IsLowStock(threshold decimal.Decimal) bool {
	return e.RemainingQuantity().LessThan(threshold)
}
