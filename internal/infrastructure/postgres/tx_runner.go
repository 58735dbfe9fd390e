package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/application/document"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ document.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Ninguna escritura parcial queda visible si fn falla.
func (r *TxRunner) Run(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	ledgerRepo repository.StockLedgerRepository,
	prepaymentRepo repository.PrepaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	docRepo := NewDocumentRepository(tx)
	ledgerRepo := NewStockLedgerRepository(tx)
	prepaymentRepo := NewPrepaymentRepository(tx)

	if err := fn(docRepo, ledgerRepo, prepaymentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
