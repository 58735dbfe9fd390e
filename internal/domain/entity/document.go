package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento del motor (venta, traslado, importación, solicitud de compra).
const (
	DocumentTypeExport          = "EXPORT"
	DocumentTypeTransfer        = "TRANSFER"
	DocumentTypeImport          = "IMPORT"
	DocumentTypePurchaseRequest = "PURCHASE_REQUEST"
)

// Estados de documento. No todos aplican a todos los tipos; la tabla de
// transiciones válidas vive en internal/domain/status.
const (
	StatusPending   = "PENDING"
	StatusPrepared  = "PREPARED"
	StatusExported  = "EXPORTED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusRejected  = "REJECTED"
	StatusReturned  = "RETURNED"
	StatusExpired   = "EXPIRED"
)

// IsValidDocumentType verifica que el tipo sea uno de los cuatro soportados.
func IsValidDocumentType(t string) bool {
	switch t {
	case DocumentTypeExport, DocumentTypeTransfer, DocumentTypeImport, DocumentTypePurchaseRequest:
		return true
	}
	return false
}

// Document representa la cabecera de un documento de bodega.
// Los totales son estado derivado: se recalculan completos en cada mutación
// de líneas (motor de precios) y nunca se editan de forma independiente.
type Document struct {
	ID             string
	Type           string
	CounterpartyID string // cliente o proveedor según el tipo
	ActorID        string // usuario autenticado que creó/posee el documento
	Note           string
	Status         string

	TotalAmount        decimal.Decimal
	VATAmount          decimal.Decimal
	PITAmount          decimal.Decimal
	LoyaltyPointAmount decimal.Decimal
	PrepaymentAmount   decimal.Decimal
	GrandTotal         decimal.Decimal

	// Solo EXPORT
	VATRate           decimal.Decimal
	PITRate           decimal.Decimal
	PrepaymentID      string
	ApplyLoyaltyPoint bool
	LoyaltyPointUsed  int64
	IsProject         bool
	AdvancePercent    decimal.Decimal

	// Solo TRANSFER: traslado interno entre ubicaciones, sin valor de venta.
	IsInternal bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
