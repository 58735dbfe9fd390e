package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PrepaymentRepository = (*PrepaymentRepo)(nil)

// PrepaymentRepo implementación de PrepaymentRepository (usable con pool o tx).
type PrepaymentRepo struct {
	q Querier
}

// NewPrepaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPrepaymentRepository(q Querier) *PrepaymentRepo {
	return &PrepaymentRepo{q: q}
}

// Create persiste un anticipo.
func (r *PrepaymentRepo) Create(p *entity.Prepayment) error {
	query := `
		INSERT INTO prepayments (id, customer_id, amount_money, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CustomerID, p.AmountMoney, p.Status, nullIfEmpty(p.Note), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prepayment: %w", err)
	}
	return nil
}

// GetByID obtiene un anticipo por ID.
func (r *PrepaymentRepo) GetByID(id string) (*entity.Prepayment, error) {
	query := `
		SELECT id, customer_id, amount_money, status, note, created_at, updated_at
		FROM prepayments WHERE id = $1`
	var p entity.Prepayment
	var note *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CustomerID, &p.AmountMoney, &p.Status, &note, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prepayment: %w", err)
	}
	if note != nil {
		p.Note = *note
	}
	return &p, nil
}

// UpdateStatus persiste el estado y updated_at del anticipo.
func (r *PrepaymentRepo) UpdateStatus(p *entity.Prepayment) error {
	query := `UPDATE prepayments SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Status, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update prepayment status: %w", err)
	}
	return nil
}
