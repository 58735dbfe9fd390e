package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación de StockLedgerRepository sobre PostgreSQL
// (usable con pool o tx). La clave primaria es (product_id, color_id, size);
// size guarda '' cuando la talla no aplica.
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

const ledgerColumns = `product_id, color_id, size, imported_quantity, exported_transferred_quantity, updated_at`

func (r *StockLedgerRepo) get(key entity.StockKey, forUpdate bool) (*entity.StockLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger WHERE product_id = $1 AND color_id = $2 AND size = $3`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var e entity.StockLedgerEntry
	err := r.q.QueryRow(context.Background(), query, key.ProductID, key.ColorID, key.Size).Scan(
		&e.ProductID, &e.ColorID, &e.Size, &e.ImportedQuantity, &e.ExportedTransferredQuantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLedgerEntry{
				ProductID:                   key.ProductID,
				ColorID:                     key.ColorID,
				Size:                        key.Size,
				ImportedQuantity:            decimal.Zero,
				ExportedTransferredQuantity: decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get stock ledger entry: %w", err)
	}
	return &e, nil
}

// Get obtiene la entrada de la clave; si no existe, una entrada en ceros.
func (r *StockLedgerRepo) Get(key entity.StockKey) (*entity.StockLedgerEntry, error) {
	return r.get(key, false)
}

// GetForUpdate obtiene la entrada y bloquea la fila (SELECT FOR UPDATE) para
// serializar actualizaciones sobre la misma clave. Si la clave aún no tiene
// fila, primero la materializa en ceros: FOR UPDATE no bloquea filas
// inexistentes, y dos movimientos concurrentes sobre una clave nueva se
// pisarían mutuamente los acumulados.
func (r *StockLedgerRepo) GetForUpdate(key entity.StockKey) (*entity.StockLedgerEntry, error) {
	seed := `
		INSERT INTO stock_ledger (product_id, color_id, size, imported_quantity, exported_transferred_quantity, updated_at)
		VALUES ($1, $2, $3, 0, 0, now())
		ON CONFLICT (product_id, color_id, size) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), seed, key.ProductID, key.ColorID, key.Size); err != nil {
		return nil, fmt.Errorf("seed stock ledger entry: %w", err)
	}
	return r.get(key, true)
}

// Upsert inserta o actualiza los acumulados de la clave.
func (r *StockLedgerRepo) Upsert(entry *entity.StockLedgerEntry) error {
	query := `
		INSERT INTO stock_ledger (product_id, color_id, size, imported_quantity, exported_transferred_quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (product_id, color_id, size)
		DO UPDATE SET imported_quantity             = EXCLUDED.imported_quantity,
		              exported_transferred_quantity = EXCLUDED.exported_transferred_quantity,
		              updated_at                    = now()`
	_, err := r.q.Exec(context.Background(), query,
		entry.ProductID, entry.ColorID, entry.Size,
		entry.ImportedQuantity, entry.ExportedTransferredQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock ledger entry: %w", err)
	}
	return nil
}

func (r *StockLedgerRepo) list(query string, args ...any) ([]*entity.StockLedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock ledger: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		if err := rows.Scan(&e.ProductID, &e.ColorID, &e.Size, &e.ImportedQuantity, &e.ExportedTransferredQuantity, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock ledger entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stock ledger: %w", err)
	}
	return entries, nil
}

// ListByProduct devuelve el desglose por color/talla de un producto.
func (r *StockLedgerRepo) ListByProduct(productID string) ([]*entity.StockLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger WHERE product_id = $1 ORDER BY color_id, size`
	return r.list(query, productID)
}

// ListLowStock devuelve las claves con restante < umbral.
func (r *StockLedgerRepo) ListLowStock(threshold decimal.Decimal) ([]*entity.StockLedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_ledger
		WHERE imported_quantity - exported_transferred_quantity < $1
		ORDER BY product_id, color_id, size`
	return r.list(query, threshold)
}

// ListOverExported devuelve las claves con restante negativo.
func (r *StockLedgerRepo) ListOverExported() ([]*entity.StockLedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_ledger
		WHERE imported_quantity - exported_transferred_quantity < 0
		ORDER BY product_id, color_id, size`
	return r.list(query)
}
