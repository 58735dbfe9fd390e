package status

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Máquina de estados por tipo de documento (servicio de dominio, función total).
// La legalidad de una transición se decide solo con (tipo, origen, destino);
// nada de condicionales dispersos en handlers.

// MovementEffect describe el efecto de una transición sobre el libro de stock.
type MovementEffect int

const (
	EffectNone          MovementEffect = iota
	EffectCommitImport                 // suma ImportedQuantity por cada línea
	EffectCommitExport                 // suma ExportedTransferredQuantity por cada línea
	EffectReverseExport                // revierte una exportación ya comprometida
)

// transitions enumera las aristas legales por tipo de documento.
// EXPIRED llega por disparo externo basado en tiempo; el motor solo acepta la
// transición desde estados no terminales de EXPORT/TRANSFER.
var transitions = map[string]map[string][]string{
	entity.DocumentTypeExport: {
		entity.StatusPending:  {entity.StatusPrepared, entity.StatusCancelled, entity.StatusExpired},
		entity.StatusPrepared: {entity.StatusExported, entity.StatusCancelled, entity.StatusExpired},
		entity.StatusExported: {entity.StatusCompleted, entity.StatusRejected, entity.StatusReturned, entity.StatusExpired},
	},
	entity.DocumentTypeTransfer: {
		entity.StatusPending:  {entity.StatusPrepared, entity.StatusCancelled, entity.StatusExpired},
		entity.StatusPrepared: {entity.StatusExported, entity.StatusCancelled, entity.StatusExpired},
		entity.StatusExported: {entity.StatusCompleted, entity.StatusExpired},
	},
	entity.DocumentTypeImport: {
		entity.StatusPending: {entity.StatusCompleted, entity.StatusCancelled},
	},
	entity.DocumentTypePurchaseRequest: {
		entity.StatusPending: {entity.StatusCompleted, entity.StatusCancelled},
	},
}

// Initial devuelve el estado inicial de cualquier tipo de documento.
func Initial() string {
	return entity.StatusPending
}

// Validate decide si la transición (from → to) es legal para el tipo dado.
// Repetir el estado actual es un no-op exitoso (noop=true) para tolerar
// peticiones duplicadas; una arista fuera de la tabla retorna ErrIllegalTransition.
func Validate(docType, from, to string) (noop bool, err error) {
	if from == to {
		return true, nil
	}
	allowed, ok := transitions[docType][from]
	if !ok {
		return false, domain.ErrIllegalTransition
	}
	for _, s := range allowed {
		if s == to {
			return false, nil
		}
	}
	return false, domain.ErrIllegalTransition
}

// AllowsLineMutation indica si en el estado dado se pueden agregar, editar o
// eliminar líneas: PENDING/PREPARED para EXPORT y TRANSFER, solo PENDING para
// IMPORT y PURCHASE_REQUEST.
func AllowsLineMutation(docType, current string) bool {
	switch docType {
	case entity.DocumentTypeExport, entity.DocumentTypeTransfer:
		return current == entity.StatusPending || current == entity.StatusPrepared
	case entity.DocumentTypeImport, entity.DocumentTypePurchaseRequest:
		return current == entity.StatusPending
	}
	return false
}

// Effect devuelve el efecto de stock de una transición ya validada.
// El compromiso real de cantidades ocurre aquí, no al autorar líneas:
// IMPORT → COMPLETED suma importado; EXPORT/TRANSFER → EXPORTED suma
// exportado/trasladado; REJECTED/RETURNED después del movimiento lo revierte.
func Effect(docType, from, to string) MovementEffect {
	switch docType {
	case entity.DocumentTypeImport:
		if from == entity.StatusPending && to == entity.StatusCompleted {
			return EffectCommitImport
		}
	case entity.DocumentTypeExport:
		if from == entity.StatusPrepared && to == entity.StatusExported {
			return EffectCommitExport
		}
		if from == entity.StatusExported && (to == entity.StatusRejected || to == entity.StatusReturned) {
			return EffectReverseExport
		}
	case entity.DocumentTypeTransfer:
		if from == entity.StatusPrepared && to == entity.StatusExported {
			return EffectCommitExport
		}
	}
	return EffectNone
}

// IsTerminal indica si el estado no tiene salidas para el tipo dado.
func IsTerminal(docType, current string) bool {
	return len(transitions[docType][current]) == 0
}
