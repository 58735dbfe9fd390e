package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre PostgreSQL (usable con pool o tx).
// document_details tiene constraint único (document_id, product_id, color_id, size)
// que respalda en BD la unicidad de la combinación por documento.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `
	id, type, counterparty_id, actor_id, note, status,
	total_amount, vat_amount, pit_amount, loyalty_point_amount, prepayment_amount, grand_total,
	vat_rate, pit_rate, prepayment_id, apply_loyalty_point, loyalty_point_used,
	is_project, advance_percent, is_internal, created_at, updated_at`

// Create persiste la cabecera del documento.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, doc.CounterpartyID, doc.ActorID, nullIfEmpty(doc.Note), doc.Status,
		doc.TotalAmount, doc.VATAmount, doc.PITAmount, doc.LoyaltyPointAmount, doc.PrepaymentAmount, doc.GrandTotal,
		doc.VATRate, doc.PITRate, nullIfEmpty(doc.PrepaymentID), doc.ApplyLoyaltyPoint, doc.LoyaltyPointUsed,
		doc.IsProject, doc.AdvancePercent, doc.IsInternal, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepo) getByID(id string, forUpdate bool) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var d entity.Document
	var note, prepaymentID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Type, &d.CounterpartyID, &d.ActorID, &note, &d.Status,
		&d.TotalAmount, &d.VATAmount, &d.PITAmount, &d.LoyaltyPointAmount, &d.PrepaymentAmount, &d.GrandTotal,
		&d.VATRate, &d.PITRate, &prepaymentID, &d.ApplyLoyaltyPoint, &d.LoyaltyPointUsed,
		&d.IsProject, &d.AdvancePercent, &d.IsInternal, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	if note != nil {
		d.Note = *note
	}
	if prepaymentID != nil {
		d.PrepaymentID = *prepaymentID
	}
	return &d, nil
}

// GetByID obtiene un documento por ID.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	return r.getByID(id, false)
}

// GetForUpdate obtiene el documento y bloquea la fila (SELECT FOR UPDATE)
// para serializar mutaciones concurrentes sobre el mismo documento.
func (r *DocumentRepo) GetForUpdate(id string) (*entity.Document, error) {
	return r.getByID(id, true)
}

// UpdateStatus persiste solo el estado y updated_at.
func (r *DocumentRepo) UpdateStatus(doc *entity.Document) error {
	query := `UPDATE documents SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, doc.ID, doc.Status, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}

// UpdateTotals persiste los montos derivados recalculados.
func (r *DocumentRepo) UpdateTotals(doc *entity.Document) error {
	query := `
		UPDATE documents
		SET total_amount         = $2,
		    vat_amount           = $3,
		    pit_amount           = $4,
		    loyalty_point_amount = $5,
		    prepayment_amount    = $6,
		    grand_total          = $7,
		    updated_at           = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.TotalAmount, doc.VATAmount, doc.PITAmount,
		doc.LoyaltyPointAmount, doc.PrepaymentAmount, doc.GrandTotal, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document totals: %w", err)
	}
	return nil
}

const lineColumns = `
	id, document_id, product_id, color_id, color_title, size,
	quantity, unit_price, discount_percent, final_price, vat, note, created_at, updated_at`

// CreateLine persiste una línea de detalle.
func (r *DocumentRepo) CreateLine(line *entity.DetailLine) error {
	query := `
		INSERT INTO document_details (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.DocumentID, line.ProductID, line.ColorID, nullIfEmpty(line.ColorTitle), line.Size,
		line.Quantity, line.UnitPrice, line.DiscountPercent, line.FinalPrice, line.VAT,
		nullIfEmpty(line.Note), line.CreatedAt, line.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCombination
		}
		return fmt.Errorf("insert document detail: %w", err)
	}
	return nil
}

// UpdateLine persiste todos los campos editables de una línea.
func (r *DocumentRepo) UpdateLine(line *entity.DetailLine) error {
	query := `
		UPDATE document_details
		SET product_id       = $2,
		    color_id         = $3,
		    color_title      = $4,
		    size             = $5,
		    quantity         = $6,
		    unit_price       = $7,
		    discount_percent = $8,
		    final_price      = $9,
		    vat              = $10,
		    note             = $11,
		    updated_at       = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ProductID, line.ColorID, nullIfEmpty(line.ColorTitle), line.Size,
		line.Quantity, line.UnitPrice, line.DiscountPercent, line.FinalPrice, line.VAT,
		nullIfEmpty(line.Note), line.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCombination
		}
		return fmt.Errorf("update document detail: %w", err)
	}
	return nil
}

// DeleteLine elimina una línea por ID.
func (r *DocumentRepo) DeleteLine(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM document_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document detail: %w", err)
	}
	return nil
}

func scanLine(row pgx.Row) (*entity.DetailLine, error) {
	var l entity.DetailLine
	var colorTitle, note *string
	err := row.Scan(
		&l.ID, &l.DocumentID, &l.ProductID, &l.ColorID, &colorTitle, &l.Size,
		&l.Quantity, &l.UnitPrice, &l.DiscountPercent, &l.FinalPrice, &l.VAT,
		&note, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if colorTitle != nil {
		l.ColorTitle = *colorTitle
	}
	if note != nil {
		l.Note = *note
	}
	return &l, nil
}

// GetLineByID obtiene una línea por ID.
func (r *DocumentRepo) GetLineByID(id string) (*entity.DetailLine, error) {
	query := `SELECT ` + lineColumns + ` FROM document_details WHERE id = $1`
	line, err := scanLine(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document detail: %w", err)
	}
	return line, nil
}

// GetLinesByDocumentID obtiene todas las líneas de un documento.
func (r *DocumentRepo) GetLinesByDocumentID(documentID string) ([]*entity.DetailLine, error) {
	query := `SELECT ` + lineColumns + ` FROM document_details WHERE document_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document details: %w", err)
	}
	defer rows.Close()

	var lines []*entity.DetailLine
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document detail: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list document details: %w", err)
	}
	return lines, nil
}
