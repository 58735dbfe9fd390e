package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Motor de precios (servicio de dominio, funciones puras).
// Los totales son estado derivado: se recalculan completos sobre el conjunto
// de líneas en cada mutación, nunca de forma incremental, para que lo
// almacenado no se desvíe de las líneas.

var hundred = decimal.NewFromInt(100)

// Params parámetros a nivel de documento para el cálculo de totales.
type Params struct {
	DocumentType      string
	VATRate           decimal.Decimal // acepta fracción (0.19) o porcentaje (19)
	PITRate           decimal.Decimal // retención en la fuente sobre la base gravable
	ApplyLoyaltyPoint bool
	LoyaltyPointUsed  int64
	PointValue        decimal.Decimal // conversión punto → moneda (configurable)
	PrepaymentAmount  decimal.Decimal // 0 si no hay anticipo o está CANCELLED
	IsInternal        bool            // solo TRANSFER: traslado interno, sin valor de venta
	IsProject         bool            // solo EXPORT: venta por proyecto con anticipo porcentual
	AdvancePercent    decimal.Decimal
}

// Totals todos los campos monetarios derivados de un documento.
type Totals struct {
	TotalAmount        decimal.Decimal
	VATAmount          decimal.Decimal
	PITAmount          decimal.Decimal
	LoyaltyPointAmount decimal.Decimal
	PrepaymentAmount   decimal.Decimal
	GrandTotal         decimal.Decimal
}

// NormalizeRate lleva una tasa a fracción: 19 → 0.19, 0.19 → 0.19.
func NormalizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.Div(hundred)
	}
	return rate
}

// LineUnitPrice devuelve el precio unitario efectivo de una línea.
// En traslados internos se fuerza a 0 sin importar lo enviado por el caller.
func LineUnitPrice(unitPrice decimal.Decimal, isInternal bool) decimal.Decimal {
	if isInternal {
		return decimal.Zero
	}
	return unitPrice
}

// LineFinalPrice = cantidad × precio unitario × (1 − descuento/100).
func LineFinalPrice(quantity, unitPrice, discountPercent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
	return quantity.Mul(unitPrice).Mul(factor)
}

// ComputeTotals deriva todos los montos del documento a partir del conjunto
// completo de líneas. Para EXPORT:
//
//	vat  = total × vatRate
//	pit  = total × pitRate
//	loyalty = min(puntos × valorPunto, total + vat)   — el canje no puede exceder lo pagable
//	grand = max(0, total + vat − pit − loyalty − anticipo)
//
// Para los demás tipos el gran total es la suma de líneas sin impuestos.
func ComputeTotals(lines []*entity.DetailLine, p Params) Totals {
	var total decimal.Decimal
	for _, line := range lines {
		total = total.Add(line.FinalPrice)
	}
	total = total.Round(2)

	if p.DocumentType != entity.DocumentTypeExport {
		return Totals{TotalAmount: total, GrandTotal: total}
	}

	vat := total.Mul(NormalizeRate(p.VATRate)).Round(2)
	pit := total.Mul(NormalizeRate(p.PITRate)).Round(2)

	var loyalty decimal.Decimal
	if p.ApplyLoyaltyPoint && p.LoyaltyPointUsed > 0 {
		loyalty = decimal.NewFromInt(p.LoyaltyPointUsed).Mul(p.PointValue)
		if payable := total.Add(vat); loyalty.GreaterThan(payable) {
			loyalty = payable
		}
		loyalty = loyalty.Round(2)
	}

	prepayment := p.PrepaymentAmount
	if prepayment.IsNegative() {
		prepayment = decimal.Zero
	}

	grand := total.Add(vat).Sub(pit).Sub(loyalty).Sub(prepayment).Round(2)
	if grand.IsNegative() {
		grand = decimal.Zero
	}

	return Totals{
		TotalAmount:        total,
		VATAmount:          vat,
		PITAmount:          pit,
		LoyaltyPointAmount: loyalty,
		PrepaymentAmount:   prepayment,
		GrandTotal:         grand,
	}
}

// AdvanceDue monto exigible al hito EXPORTED de una venta por proyecto:
// grandTotal × advancePercent/100. El saldo se liquida en COMPLETED.
func AdvanceDue(grandTotal, advancePercent decimal.Decimal) decimal.Decimal {
	return grandTotal.Mul(advancePercent).Div(hundred).Round(2)
}
