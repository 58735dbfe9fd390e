package document_test

import (
	"context"
	"sort"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Fakes en memoria de los puertos de persistencia. Mismo contrato que los
// adaptadores de PostgreSQL: GetByID devuelve (nil, nil) cuando no existe y el
// libro de stock devuelve una entrada en ceros para claves desconocidas.

// ── DocumentRepository ────────────────────────────────────────────────────────

type fakeDocumentRepo struct {
	docs  map[string]*entity.Document
	lines map[string]*entity.DetailLine
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		docs:  make(map[string]*entity.Document),
		lines: make(map[string]*entity.DetailLine),
	}
}

func (r *fakeDocumentRepo) Create(doc *entity.Document) error {
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) GetByID(id string) (*entity.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeDocumentRepo) GetForUpdate(id string) (*entity.Document, error) {
	return r.GetByID(id)
}

func (r *fakeDocumentRepo) UpdateStatus(doc *entity.Document) error {
	stored := r.docs[doc.ID]
	stored.Status = doc.Status
	stored.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *fakeDocumentRepo) UpdateTotals(doc *entity.Document) error {
	stored := r.docs[doc.ID]
	stored.TotalAmount = doc.TotalAmount
	stored.VATAmount = doc.VATAmount
	stored.PITAmount = doc.PITAmount
	stored.LoyaltyPointAmount = doc.LoyaltyPointAmount
	stored.PrepaymentAmount = doc.PrepaymentAmount
	stored.GrandTotal = doc.GrandTotal
	stored.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *fakeDocumentRepo) CreateLine(line *entity.DetailLine) error {
	cp := *line
	r.lines[line.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) UpdateLine(line *entity.DetailLine) error {
	cp := *line
	r.lines[line.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) DeleteLine(id string) error {
	delete(r.lines, id)
	return nil
}

func (r *fakeDocumentRepo) GetLineByID(id string) (*entity.DetailLine, error) {
	line, ok := r.lines[id]
	if !ok {
		return nil, nil
	}
	cp := *line
	return &cp, nil
}

func (r *fakeDocumentRepo) GetLinesByDocumentID(documentID string) ([]*entity.DetailLine, error) {
	var out []*entity.DetailLine
	for _, line := range r.lines {
		if line.DocumentID == documentID {
			cp := *line
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ── StockLedgerRepository ─────────────────────────────────────────────────────

type fakeLedgerRepo struct {
	entries map[entity.StockKey]*entity.StockLedgerEntry
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{entries: make(map[entity.StockKey]*entity.StockLedgerEntry)}
}

// seed carga una entrada inicial del libro para el test.
func (r *fakeLedgerRepo) seed(key entity.StockKey, imported, exported int64) {
	r.entries[key] = &entity.StockLedgerEntry{
		ProductID:                   key.ProductID,
		ColorID:                     key.ColorID,
		Size:                        key.Size,
		ImportedQuantity:            decimal.NewFromInt(imported),
		ExportedTransferredQuantity: decimal.NewFromInt(exported),
	}
}

func (r *fakeLedgerRepo) Get(key entity.StockKey) (*entity.StockLedgerEntry, error) {
	entry, ok := r.entries[key]
	if !ok {
		return &entity.StockLedgerEntry{
			ProductID: key.ProductID,
			ColorID:   key.ColorID,
			Size:      key.Size,
		}, nil
	}
	cp := *entry
	return &cp, nil
}

// GetForUpdate materializa la fila en ceros si no existe, igual que el
// adaptador de PostgreSQL, para que el contrato de bloqueo sea el mismo.
func (r *fakeLedgerRepo) GetForUpdate(key entity.StockKey) (*entity.StockLedgerEntry, error) {
	if _, ok := r.entries[key]; !ok {
		r.entries[key] = &entity.StockLedgerEntry{
			ProductID: key.ProductID,
			ColorID:   key.ColorID,
			Size:      key.Size,
		}
	}
	return r.Get(key)
}

func (r *fakeLedgerRepo) Upsert(entry *entity.StockLedgerEntry) error {
	cp := *entry
	r.entries[entry.Key()] = &cp
	return nil
}

func (r *fakeLedgerRepo) ListByProduct(productID string) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range r.entries {
		if e.ProductID == productID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLedgerRepo) ListLowStock(threshold decimal.Decimal) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range r.entries {
		if e.IsLowStock(threshold) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLedgerRepo) ListOverExported() ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range r.entries {
		if e.IsOverExported() {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── PrepaymentRepository ──────────────────────────────────────────────────────

type fakePrepaymentRepo struct {
	prepayments map[string]*entity.Prepayment
}

func newFakePrepaymentRepo() *fakePrepaymentRepo {
	return &fakePrepaymentRepo{prepayments: make(map[string]*entity.Prepayment)}
}

func (r *fakePrepaymentRepo) Create(p *entity.Prepayment) error {
	cp := *p
	r.prepayments[p.ID] = &cp
	return nil
}

func (r *fakePrepaymentRepo) GetByID(id string) (*entity.Prepayment, error) {
	p, ok := r.prepayments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePrepaymentRepo) UpdateStatus(p *entity.Prepayment) error {
	stored := r.prepayments[p.ID]
	stored.Status = p.Status
	stored.UpdatedAt = p.UpdatedAt
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(ids ...string) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, id := range ids {
		r.products[id] = &entity.Product{ID: id, SKU: "SKU-" + id, Name: "Producto " + id}
	}
	return r
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin
// transacción real.
type fakeTxRunner struct {
	docRepo        *fakeDocumentRepo
	ledgerRepo     *fakeLedgerRepo
	prepaymentRepo *fakePrepaymentRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	ledgerRepo repository.StockLedgerRepository,
	prepaymentRepo repository.PrepaymentRepository,
) error) error {
	return fn(r.docRepo, r.ledgerRepo, r.prepaymentRepo)
}
