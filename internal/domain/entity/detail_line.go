package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tallas permitidas en líneas de traslado. En los demás tipos la talla va vacía.
var ValidSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// IsValidSize verifica que la talla pertenezca al conjunto cerrado XS..XXXL.
func IsValidSize(size string) bool {
	for _, s := range ValidSizes {
		if s == size {
			return true
		}
	}
	return false
}

// DetailLine representa una línea de detalle de un documento.
// Invariante: dentro de un documento la tupla (ProductID, ColorID, Size) es única.
// FinalPrice es derivado; UnitPrice se fuerza a 0 cuando el traslado es interno.
type DetailLine struct {
	ID              string
	DocumentID      string
	ProductID       string
	ColorID         string
	ColorTitle      string // valor de presentación desnormalizado
	Size            string // solo líneas de traslado; vacío en los demás tipos
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	FinalPrice      decimal.Decimal
	VAT             decimal.Decimal // informativo por línea; el IVA del documento se deriva de la tasa
	Note            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Key devuelve la clave compuesta (producto, color, talla) de la línea.
func (l *DetailLine) Key() StockKey {
	return StockKey{ProductID: l.ProductID, ColorID: l.ColorID, Size: l.Size}
}
