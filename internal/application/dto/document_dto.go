package dto

import "github.com/shopspring/decimal"

// CreateDocumentRequest body para POST /api/{exports|transfers|imports|purchase-requests}.
// Los campos de tasa/anticipo/puntos solo aplican a EXPORT; is_internal solo a TRANSFER.
type CreateDocumentRequest struct {
	CounterpartyID string `json:"counterparty_id" validate:"required"`
	Note           string `json:"note,omitempty"`

	VATRate           decimal.Decimal `json:"vat_rate,omitempty"`
	PITRate           decimal.Decimal `json:"pit_rate,omitempty"`
	PrepaymentID      string          `json:"prepayment_id,omitempty"`
	ApplyLoyaltyPoint bool            `json:"apply_loyalty_point,omitempty"`
	LoyaltyPointUsed  int64           `json:"loyalty_point_used,omitempty" validate:"min=0"`
	IsProject         bool            `json:"is_project,omitempty"`
	AdvancePercent    decimal.Decimal `json:"advance_percent,omitempty"`

	IsInternal bool `json:"is_internal,omitempty"`
}

// AddLineRequest body para POST /api/{type}-details.
// color_title es el valor de presentación desnormalizado; size solo en traslados.
type AddLineRequest struct {
	DocumentID      string          `json:"document_id" validate:"required"`
	ProductID       string          `json:"product_id" validate:"required"`
	Color           string          `json:"color" validate:"required"`
	ColorTitle      string          `json:"color_title,omitempty"`
	Size            string          `json:"size,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent,omitempty"`
	VAT             decimal.Decimal `json:"vat,omitempty"`
	Note            string          `json:"note,omitempty"`
}

// UpdateLineRequest patch para PUT /api/{type}-details/:id. Solo los campos
// presentes se modifican; si cambia la clave (producto, color, talla) se
// revalida unicidad y stock.
type UpdateLineRequest struct {
	ProductID       *string          `json:"product_id,omitempty"`
	Color           *string          `json:"color,omitempty"`
	ColorTitle      *string          `json:"color_title,omitempty"`
	Size            *string          `json:"size,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	VAT             *decimal.Decimal `json:"vat,omitempty"`
	Note            *string          `json:"note,omitempty"`
}

// TransitionStatusRequest body para PUT /api/{type}/:id/status.
type TransitionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// DetailLineResponse línea de detalle en respuestas.
type DetailLineResponse struct {
	ID              string          `json:"id"`
	DocumentID      string          `json:"document_id"`
	ProductID       string          `json:"product_id"`
	Color           string          `json:"color"`
	ColorTitle      string          `json:"color_title,omitempty"`
	Size            string          `json:"size,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	VAT             decimal.Decimal `json:"vat"`
	Note            string          `json:"note,omitempty"`
}

// DocumentResponse documento con totales derivados y detalle.
// advance_due_amount solo aparece en ventas por proyecto en estado EXPORTED.
type DocumentResponse struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	CounterpartyID string `json:"counterparty_id"`
	ActorID        string `json:"actor_id"`
	Note           string `json:"note,omitempty"`
	Status         string `json:"status"`

	TotalAmount        decimal.Decimal `json:"total_amount"`
	VATAmount          decimal.Decimal `json:"vat_amount"`
	PITAmount          decimal.Decimal `json:"pit_amount"`
	LoyaltyPointAmount decimal.Decimal `json:"loyalty_point_amount"`
	PrepaymentAmount   decimal.Decimal `json:"prepayment_amount"`
	GrandTotal         decimal.Decimal `json:"grand_total"`

	VATRate           decimal.Decimal  `json:"vat_rate,omitempty"`
	PITRate           decimal.Decimal  `json:"pit_rate,omitempty"`
	PrepaymentID      string           `json:"prepayment_id,omitempty"`
	ApplyLoyaltyPoint bool             `json:"apply_loyalty_point,omitempty"`
	LoyaltyPointUsed  int64            `json:"loyalty_point_used,omitempty"`
	IsProject         bool             `json:"is_project,omitempty"`
	AdvancePercent    decimal.Decimal  `json:"advance_percent,omitempty"`
	AdvanceDueAmount  *decimal.Decimal `json:"advance_due_amount,omitempty"`

	IsInternal bool `json:"is_internal,omitempty"`

	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
	Details   []DetailLineResponse `json:"details"`
}

// AddLineResponse línea creada junto con los totales refrescados del documento.
type AddLineResponse struct {
	Line     DetailLineResponse `json:"line"`
	Document DocumentResponse   `json:"document"`
}
