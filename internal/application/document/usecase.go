package document

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/pricing"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/domain/status"
)

// Config política del motor de documentos.
type Config struct {
	// PointValue conversión punto de fidelidad → moneda.
	PointValue decimal.Decimal
	// InternalTransferBypassStock permite que traslados internos omitan la
	// verificación de disponibilidad al autorar líneas (reubican, no consumen).
	InternalTransferBypassStock bool
}

// UseCase motor de ciclo de vida de documentos: creación, líneas, transiciones
// de estado y totales derivados, todo transaccional.
type UseCase struct {
	txRunner       TxRunner
	docRepo        repository.DocumentRepository
	prepaymentRepo repository.PrepaymentRepository
	productRepo    repository.ProductRepository
	cfg            Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	prepaymentRepo repository.PrepaymentRepository,
	productRepo repository.ProductRepository,
	cfg Config,
) *UseCase {
	if cfg.PointValue.IsZero() {
		cfg.PointValue = decimal.NewFromInt(1000)
	}
	return &UseCase{
		txRunner:       txRunner,
		docRepo:        docRepo,
		prepaymentRepo: prepaymentRepo,
		productRepo:    productRepo,
		cfg:            cfg,
	}
}

// CreateDocument crea un documento del tipo dado en estado inicial PENDING con
// totales en cero.
func (uc *UseCase) CreateDocument(ctx context.Context, actorID, docType string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if actorID == "" || in.CounterpartyID == "" || !entity.IsValidDocumentType(docType) {
		return nil, domain.ErrInvalidInput
	}
	if in.VATRate.IsNegative() || in.PITRate.IsNegative() || in.LoyaltyPointUsed < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.AdvancePercent.IsNegative() || in.AdvancePercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}

	// Validar referencia de anticipo (solo lectura, fuera de la tx)
	if docType == entity.DocumentTypeExport && in.PrepaymentID != "" {
		prepayment, err := uc.prepaymentRepo.GetByID(in.PrepaymentID)
		if err != nil {
			return nil, err
		}
		if prepayment == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	doc := &entity.Document{
		ID:             uuid.New().String(),
		Type:           docType,
		CounterpartyID: in.CounterpartyID,
		ActorID:        actorID,
		Note:           in.Note,
		Status:         status.Initial(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if docType == entity.DocumentTypeExport {
		doc.VATRate = in.VATRate
		doc.PITRate = in.PITRate
		doc.PrepaymentID = in.PrepaymentID
		doc.ApplyLoyaltyPoint = in.ApplyLoyaltyPoint
		doc.LoyaltyPointUsed = in.LoyaltyPointUsed
		doc.IsProject = in.IsProject
		doc.AdvancePercent = in.AdvancePercent
	}
	if docType == entity.DocumentTypeTransfer {
		doc.IsInternal = in.IsInternal
	}

	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc, nil), nil
}

// GetDocument obtiene un documento con su detalle y totales derivados.
func (uc *UseCase) GetDocument(ctx context.Context, docType, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Type != docType {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.docRepo.GetLinesByDocumentID(id)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc, lines), nil
}

// AddLine agrega una línea al documento: verifica estado, unicidad de la
// combinación (producto, color, talla), disponibilidad de stock (chequeo
// suave sobre el libro actual) y recalcula los totales, todo en una tx.
func (uc *UseCase) AddLine(ctx context.Context, actorID, docType string, in dto.AddLineRequest) (*dto.AddLineResponse, error) {
	if in.DocumentID == "" || in.ProductID == "" || in.Color == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) || in.UnitPrice.IsNegative() || in.VAT.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	if in.Size != "" {
		if docType != entity.DocumentTypeTransfer || !entity.IsValidSize(in.Size) {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar producto (solo lectura, fuera de la tx)
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var resp *dto.AddLineResponse

	err = uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		ledgerRepo repository.StockLedgerRepository,
		prepaymentRepo repository.PrepaymentRepository,
	) error {
		// Bloquea la cabecera para serializar mutaciones del mismo documento
		doc, err := docRepo.GetForUpdate(in.DocumentID)
		if err != nil {
			return err
		}
		if doc == nil || doc.Type != docType {
			return domain.ErrNotFound
		}
		if !status.AllowsLineMutation(doc.Type, doc.Status) {
			return domain.ErrInvalidState
		}

		lines, err := docRepo.GetLinesByDocumentID(doc.ID)
		if err != nil {
			return err
		}
		key := entity.StockKey{ProductID: in.ProductID, ColorID: in.Color, Size: in.Size}
		for _, l := range lines {
			if l.Key() == key {
				return domain.ErrDuplicateCombination
			}
		}

		if uc.requiresStockCheck(doc) {
			entry, err := ledgerRepo.Get(key)
			if err != nil {
				return err
			}
			if entry.RemainingQuantity().LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
		}

		unitPrice := pricing.LineUnitPrice(in.UnitPrice, doc.Type == entity.DocumentTypeTransfer && doc.IsInternal)
		line := &entity.DetailLine{
			ID:              uuid.New().String(),
			DocumentID:      doc.ID,
			ProductID:       in.ProductID,
			ColorID:         in.Color,
			ColorTitle:      in.ColorTitle,
			Size:            in.Size,
			Quantity:        in.Quantity,
			UnitPrice:       unitPrice,
			DiscountPercent: in.DiscountPercent,
			FinalPrice:      pricing.LineFinalPrice(in.Quantity, unitPrice, in.DiscountPercent),
			VAT:             in.VAT,
			Note:            in.Note,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := docRepo.CreateLine(line); err != nil {
			return err
		}

		lines = append(lines, line)
		if err := uc.refreshTotals(docRepo, prepaymentRepo, doc, lines, now); err != nil {
			return err
		}
		resp = &dto.AddLineResponse{
			Line:     toLineResponse(line),
			Document: *toDocumentResponse(doc, lines),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateLine modifica una línea existente: revalida unicidad si cambia la
// clave, verifica el delta de stock solicitado y recalcula totales.
func (uc *UseCase) UpdateLine(ctx context.Context, actorID, docType, lineID string, in dto.UpdateLineRequest) (*dto.AddLineResponse, error) {
	if lineID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.AddLineResponse

	err := uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		ledgerRepo repository.StockLedgerRepository,
		prepaymentRepo repository.PrepaymentRepository,
	) error {
		line, err := docRepo.GetLineByID(lineID)
		if err != nil {
			return err
		}
		if line == nil {
			return domain.ErrNotFound
		}
		doc, err := docRepo.GetForUpdate(line.DocumentID)
		if err != nil {
			return err
		}
		if doc == nil || doc.Type != docType {
			return domain.ErrNotFound
		}
		if !status.AllowsLineMutation(doc.Type, doc.Status) {
			return domain.ErrInvalidState
		}

		oldKey := line.Key()
		oldQuantity := line.Quantity

		if in.ProductID != nil {
			if *in.ProductID == "" {
				return domain.ErrInvalidInput
			}
			product, err := uc.productRepo.GetByID(*in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			line.ProductID = *in.ProductID
		}
		if in.Color != nil {
			if *in.Color == "" {
				return domain.ErrInvalidInput
			}
			line.ColorID = *in.Color
		}
		if in.ColorTitle != nil {
			line.ColorTitle = *in.ColorTitle
		}
		if in.Size != nil {
			if *in.Size != "" && (doc.Type != entity.DocumentTypeTransfer || !entity.IsValidSize(*in.Size)) {
				return domain.ErrInvalidInput
			}
			line.Size = *in.Size
		}
		if in.Quantity != nil {
			if !in.Quantity.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			line.Quantity = *in.Quantity
		}
		if in.UnitPrice != nil {
			if in.UnitPrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			line.UnitPrice = *in.UnitPrice
		}
		if in.DiscountPercent != nil {
			if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
				return domain.ErrInvalidInput
			}
			line.DiscountPercent = *in.DiscountPercent
		}
		if in.VAT != nil {
			if in.VAT.IsNegative() {
				return domain.ErrInvalidInput
			}
			line.VAT = *in.VAT
		}
		if in.Note != nil {
			line.Note = *in.Note
		}

		lines, err := docRepo.GetLinesByDocumentID(doc.ID)
		if err != nil {
			return err
		}
		newKey := line.Key()
		if newKey != oldKey {
			for _, l := range lines {
				if l.ID != line.ID && l.Key() == newKey {
					return domain.ErrDuplicateCombination
				}
			}
		}

		if uc.requiresStockCheck(doc) {
			// Clave nueva: se exige la cantidad completa; misma clave: solo el
			// incremento solicitado sobre el chequeo ya hecho al crear la línea.
			required := line.Quantity
			if newKey == oldKey {
				required = line.Quantity.Sub(oldQuantity)
			}
			if required.GreaterThan(decimal.Zero) {
				entry, err := ledgerRepo.Get(newKey)
				if err != nil {
					return err
				}
				if entry.RemainingQuantity().LessThan(required) {
					return domain.ErrInsufficientStock
				}
			}
		}

		line.UnitPrice = pricing.LineUnitPrice(line.UnitPrice, doc.Type == entity.DocumentTypeTransfer && doc.IsInternal)
		line.FinalPrice = pricing.LineFinalPrice(line.Quantity, line.UnitPrice, line.DiscountPercent)
		line.UpdatedAt = now
		if err := docRepo.UpdateLine(line); err != nil {
			return err
		}

		for i, l := range lines {
			if l.ID == line.ID {
				lines[i] = line
			}
		}
		if err := uc.refreshTotals(docRepo, prepaymentRepo, doc, lines, now); err != nil {
			return err
		}
		resp = &dto.AddLineResponse{
			Line:     toLineResponse(line),
			Document: *toDocumentResponse(doc, lines),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RemoveLine elimina una línea y recalcula los totales del documento.
func (uc *UseCase) RemoveLine(ctx context.Context, actorID, docType, lineID string) (*dto.DocumentResponse, error) {
	if lineID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.DocumentResponse

	err := uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		ledgerRepo repository.StockLedgerRepository,
		prepaymentRepo repository.PrepaymentRepository,
	) error {
		line, err := docRepo.GetLineByID(lineID)
		if err != nil {
			return err
		}
		if line == nil {
			return domain.ErrNotFound
		}
		doc, err := docRepo.GetForUpdate(line.DocumentID)
		if err != nil {
			return err
		}
		if doc == nil || doc.Type != docType {
			return domain.ErrNotFound
		}
		if !status.AllowsLineMutation(doc.Type, doc.Status) {
			return domain.ErrInvalidState
		}

		if err := docRepo.DeleteLine(line.ID); err != nil {
			return err
		}
		lines, err := docRepo.GetLinesByDocumentID(doc.ID)
		if err != nil {
			return err
		}
		if err := uc.refreshTotals(docRepo, prepaymentRepo, doc, lines, now); err != nil {
			return err
		}
		resp = toDocumentResponse(doc, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// TransitionStatus cambia el estado del documento según la máquina de estados
// y aplica en la misma tx el efecto de stock de la transición. Repetir el
// estado actual es un no-op exitoso.
func (uc *UseCase) TransitionStatus(ctx context.Context, actorID, docType, docID, target string) (*dto.DocumentResponse, error) {
	if docID == "" || target == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.DocumentResponse

	err := uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		ledgerRepo repository.StockLedgerRepository,
		prepaymentRepo repository.PrepaymentRepository,
	) error {
		doc, err := docRepo.GetForUpdate(docID)
		if err != nil {
			return err
		}
		if doc == nil || doc.Type != docType {
			return domain.ErrNotFound
		}
		lines, err := docRepo.GetLinesByDocumentID(doc.ID)
		if err != nil {
			return err
		}

		noop, err := status.Validate(doc.Type, doc.Status, target)
		if err != nil {
			return err
		}
		if noop {
			resp = toDocumentResponse(doc, lines)
			return nil
		}

		if effect := status.Effect(doc.Type, doc.Status, target); effect != status.EffectNone {
			if err := applyMovement(ledgerRepo, lines, effect, now); err != nil {
				return err
			}
		}

		doc.Status = target
		doc.UpdatedAt = now
		if err := docRepo.UpdateStatus(doc); err != nil {
			return err
		}
		resp = toDocumentResponse(doc, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// requiresStockCheck: el chequeo suave de disponibilidad aplica a líneas de
// EXPORT y TRANSFER; los traslados internos pueden omitirse por política.
func (uc *UseCase) requiresStockCheck(doc *entity.Document) bool {
	switch doc.Type {
	case entity.DocumentTypeExport:
		return true
	case entity.DocumentTypeTransfer:
		return !(doc.IsInternal && uc.cfg.InternalTransferBypassStock)
	}
	return false
}

// refreshTotals recalcula todos los montos derivados sobre el conjunto
// completo de líneas y los persiste en la cabecera.
func (uc *UseCase) refreshTotals(
	docRepo repository.DocumentRepository,
	prepaymentRepo repository.PrepaymentRepository,
	doc *entity.Document,
	lines []*entity.DetailLine,
	now time.Time,
) error {
	prepaymentAmount := decimal.Zero
	if doc.Type == entity.DocumentTypeExport && doc.PrepaymentID != "" {
		prepayment, err := prepaymentRepo.GetByID(doc.PrepaymentID)
		if err != nil {
			return err
		}
		if prepayment == nil {
			return domain.ErrNotFound
		}
		if prepayment.Status != entity.PrepaymentStatusCancelled {
			prepaymentAmount = prepayment.AmountMoney
		}
	}

	totals := pricing.ComputeTotals(lines, pricing.Params{
		DocumentType:      doc.Type,
		VATRate:           doc.VATRate,
		PITRate:           doc.PITRate,
		ApplyLoyaltyPoint: doc.ApplyLoyaltyPoint,
		LoyaltyPointUsed:  doc.LoyaltyPointUsed,
		PointValue:        uc.cfg.PointValue,
		PrepaymentAmount:  prepaymentAmount,
		IsInternal:        doc.IsInternal,
		IsProject:         doc.IsProject,
		AdvancePercent:    doc.AdvancePercent,
	})
	doc.TotalAmount = totals.TotalAmount
	doc.VATAmount = totals.VATAmount
	doc.PITAmount = totals.PITAmount
	doc.LoyaltyPointAmount = totals.LoyaltyPointAmount
	doc.PrepaymentAmount = totals.PrepaymentAmount
	doc.GrandTotal = totals.GrandTotal
	doc.UpdatedAt = now
	return docRepo.UpdateTotals(doc)
}

// applyMovement aplica el efecto de stock de una transición, bloqueando fila
// por fila (SELECT FOR UPDATE) para evitar lost updates sobre la misma clave.
func applyMovement(ledgerRepo repository.StockLedgerRepository, lines []*entity.DetailLine, effect status.MovementEffect, now time.Time) error {
	for _, line := range lines {
		entry, err := ledgerRepo.GetForUpdate(line.Key())
		if err != nil {
			return err
		}
		switch effect {
		case status.EffectCommitImport:
			entry.ImportedQuantity = entry.ImportedQuantity.Add(line.Quantity)
		case status.EffectCommitExport:
			entry.ExportedTransferredQuantity = entry.ExportedTransferredQuantity.Add(line.Quantity)
		case status.EffectReverseExport:
			entry.ExportedTransferredQuantity = entry.ExportedTransferredQuantity.Sub(line.Quantity)
		}
		entry.UpdatedAt = now
		if err := ledgerRepo.Upsert(entry); err != nil {
			return err
		}
	}
	return nil
}

func toLineResponse(l *entity.DetailLine) dto.DetailLineResponse {
	return dto.DetailLineResponse{
		ID:              l.ID,
		DocumentID:      l.DocumentID,
		ProductID:       l.ProductID,
		Color:           l.ColorID,
		ColorTitle:      l.ColorTitle,
		Size:            l.Size,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		DiscountPercent: l.DiscountPercent,
		FinalPrice:      l.FinalPrice,
		VAT:             l.VAT,
		Note:            l.Note,
	}
}

func toDocumentResponse(doc *entity.Document, lines []*entity.DetailLine) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:                 doc.ID,
		Type:               doc.Type,
		CounterpartyID:     doc.CounterpartyID,
		ActorID:            doc.ActorID,
		Note:               doc.Note,
		Status:             doc.Status,
		TotalAmount:        doc.TotalAmount,
		VATAmount:          doc.VATAmount,
		PITAmount:          doc.PITAmount,
		LoyaltyPointAmount: doc.LoyaltyPointAmount,
		PrepaymentAmount:   doc.PrepaymentAmount,
		GrandTotal:         doc.GrandTotal,
		VATRate:            doc.VATRate,
		PITRate:            doc.PITRate,
		PrepaymentID:       doc.PrepaymentID,
		ApplyLoyaltyPoint:  doc.ApplyLoyaltyPoint,
		LoyaltyPointUsed:   doc.LoyaltyPointUsed,
		IsProject:          doc.IsProject,
		AdvancePercent:     doc.AdvancePercent,
		IsInternal:         doc.IsInternal,
		CreatedAt:          doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          doc.UpdatedAt.Format(time.RFC3339),
		Details:            make([]dto.DetailLineResponse, 0, len(lines)),
	}
	// Ventas por proyecto: monto exigible del anticipo en el hito EXPORTED
	if doc.Type == entity.DocumentTypeExport && doc.IsProject && doc.Status == entity.StatusExported {
		due := pricing.AdvanceDue(doc.GrandTotal, doc.AdvancePercent)
		resp.AdvanceDueAmount = &due
	}
	for _, l := range lines {
		resp.Details = append(resp.Details, toLineResponse(l))
	}
	return resp
}
