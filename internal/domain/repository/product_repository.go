package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository puerto de solo lectura para validar referencias de producto.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
}
