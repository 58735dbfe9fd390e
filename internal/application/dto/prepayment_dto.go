package dto

import "github.com/shopspring/decimal"

// CreatePrepaymentRequest body para POST /api/prepayments.
type CreatePrepaymentRequest struct {
	CustomerID  string          `json:"customer_id" validate:"required"`
	AmountMoney decimal.Decimal `json:"amount_money"`
	Note        string          `json:"note,omitempty"`
}

// UpdatePrepaymentStatusRequest body para PUT /api/prepayments/:id/status.
type UpdatePrepaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PrepaymentResponse anticipo en respuestas.
type PrepaymentResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	AmountMoney decimal.Decimal `json:"amount_money"`
	Status      string          `json:"status"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
