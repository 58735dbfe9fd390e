package document

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cada mutación (líneas + totales
// + libro de stock) se confirme o se revierta como unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		ledgerRepo repository.StockLedgerRepository,
		prepaymentRepo repository.PrepaymentRepository,
	) error) error
}
