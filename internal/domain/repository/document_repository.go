package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para documentos y sus líneas.
// Las líneas pertenecen en exclusiva a su documento (se eliminan en cascada con él).
type DocumentRepository interface {
	Create(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE) para serializar las
	// mutaciones concurrentes sobre el mismo documento.
	GetForUpdate(id string) (*entity.Document, error)
	// UpdateStatus persiste solo estado y updated_at.
	UpdateStatus(doc *entity.Document) error
	// UpdateTotals persiste los montos derivados recalculados.
	UpdateTotals(doc *entity.Document) error

	CreateLine(line *entity.DetailLine) error
	UpdateLine(line *entity.DetailLine) error
	DeleteLine(id string) error
	GetLineByID(id string) (*entity.DetailLine, error)
	GetLinesByDocumentID(documentID string) ([]*entity.DetailLine, error)
}
