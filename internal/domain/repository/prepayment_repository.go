package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// PrepaymentRepository define el puerto de persistencia para anticipos.
type PrepaymentRepository interface {
	Create(p *entity.Prepayment) error
	GetByID(id string) (*entity.Prepayment, error)
	UpdateStatus(p *entity.Prepayment) error
}
