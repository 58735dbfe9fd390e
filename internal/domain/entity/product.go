package entity

import "time"

// Product referencia mínima de producto para validar líneas y consultas de stock.
// El CRUD completo de catálogo vive fuera del motor.
type Product struct {
	ID        string
	SKU       string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
