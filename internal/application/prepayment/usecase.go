package prepayment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Transiciones legales de un anticipo. CANCELLED deja de descontar en los
// documentos que lo referencien (el recálculo ocurre al mutar líneas).
var transitions = map[string][]string{
	entity.PrepaymentStatusPending:    {entity.PrepaymentStatusProcessing, entity.PrepaymentStatusCompleted, entity.PrepaymentStatusCancelled},
	entity.PrepaymentStatusProcessing: {entity.PrepaymentStatusCompleted, entity.PrepaymentStatusCancelled},
}

// UseCase administración de anticipos de cliente.
type UseCase struct {
	repo repository.PrepaymentRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.PrepaymentRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create registra un anticipo en estado PENDING.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePrepaymentRequest) (*dto.PrepaymentResponse, error) {
	if in.CustomerID == "" || !in.AmountMoney.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Prepayment{
		ID:          uuid.New().String(),
		CustomerID:  in.CustomerID,
		AmountMoney: in.AmountMoney,
		Status:      entity.PrepaymentStatusPending,
		Note:        in.Note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Get obtiene un anticipo por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.PrepaymentResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(p), nil
}

// TransitionStatus cambia el estado del anticipo. Repetir el estado actual es
// un no-op exitoso; una arista fuera de la tabla retorna ErrIllegalTransition.
func (uc *UseCase) TransitionStatus(ctx context.Context, id, target string) (*dto.PrepaymentResponse, error) {
	if id == "" || target == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status == target {
		return toResponse(p), nil
	}
	allowed := false
	for _, s := range transitions[p.Status] {
		if s == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.ErrIllegalTransition
	}
	p.Status = target
	p.UpdatedAt = time.Now()
	if err := uc.repo.UpdateStatus(p); err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

func toResponse(p *entity.Prepayment) *dto.PrepaymentResponse {
	return &dto.PrepaymentResponse{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		AmountMoney: p.AmountMoney,
		Status:      p.Status,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
