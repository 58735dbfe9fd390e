package dto

import "github.com/shopspring/decimal"

// StockEntryResponse una clave del libro de stock con sus acumulados.
type StockEntryResponse struct {
	ProductID           string          `json:"product_id"`
	Color               string          `json:"color"`
	Size                string          `json:"size,omitempty"`
	Imported            decimal.Decimal `json:"imported"`
	ExportedTransferred decimal.Decimal `json:"exported_transferred"`
	Remaining           decimal.Decimal `json:"remaining"`
	OverExported        bool            `json:"over_exported"`
}

// ProductStockResponse stock agregado de un producto con desglose por color/talla.
type ProductStockResponse struct {
	ProductID           string               `json:"product_id"`
	Imported            decimal.Decimal      `json:"imported"`
	ExportedTransferred decimal.Decimal      `json:"exported_transferred"`
	Remaining           decimal.Decimal      `json:"remaining"`
	Breakdown           []StockEntryResponse `json:"breakdown"`
}
