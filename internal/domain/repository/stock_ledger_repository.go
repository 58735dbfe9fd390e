package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// StockLedgerRepository define el puerto del libro de stock por
// (producto, color, talla opcional). Las escrituras pasan siempre por aquí,
// dentro de transacciones disparadas por cambios de estado de documentos.
type StockLedgerRepository interface {
	// Get devuelve la entrada de la clave; si no existe, una entrada en ceros.
	Get(key entity.StockKey) (*entity.StockLedgerEntry, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// actualizaciones sobre la misma clave; claves sin fila se materializan
	// en ceros antes de bloquear, para que el lock exista siempre.
	GetForUpdate(key entity.StockKey) (*entity.StockLedgerEntry, error)
	Upsert(entry *entity.StockLedgerEntry) error

	ListByProduct(productID string) ([]*entity.StockLedgerEntry, error)
	// ListLowStock devuelve las claves con restante < umbral.
	ListLowStock(threshold decimal.Decimal) ([]*entity.StockLedgerEntry, error)
	// ListOverExported devuelve las claves con restante negativo.
	ListOverExported() ([]*entity.StockLedgerEntry, error)
}
