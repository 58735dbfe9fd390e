package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un anticipo de cliente.
const (
	PrepaymentStatusPending    = "PENDING"
	PrepaymentStatusProcessing = "PROCESSING"
	PrepaymentStatusCompleted  = "COMPLETED"
	PrepaymentStatusCancelled  = "CANCELLED"
)

// Prepayment representa un anticipo registrado de forma independiente.
// Un EXPORT puede referenciar a lo sumo un anticipo, cuyo monto se descuenta
// una sola vez del gran total; un anticipo CANCELLED no descuenta nada.
type Prepayment struct {
	ID          string
	CustomerID  string
	AmountMoney decimal.Decimal
	Status      string
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
