package usecase

import (
	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// TransferUseCase casos de uso para traslados entre sedes.
type TransferUseCase struct {
	repo repository.TransferRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(repo repository.TransferRepository) *TransferUseCase {
	return &TransferUseCase{repo: repo}
}

// Create solicita un traslado (estado pending, sin efecto sobre el stock
// hasta completarlo).
func (uc *TransferUseCase) Create(in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.ItemID == "" {
		return nil, domain.Validation("item_id", "el item es obligatorio")
	}
	if in.FromLocationID == "" {
		return nil, domain.Validation("from_location_id", "la sede origen es obligatoria")
	}
	if in.ToLocationID == "" {
		return nil, domain.Validation("to_location_id", "la sede destino es obligatoria")
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, domain.Validation("to_location_id", "origen y destino no pueden ser la misma sede")
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.Validation("quantity", "debe ser mayor que cero")
	}
	transfer := &entity.Transfer{
		ItemID:         in.ItemID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		ExpectedDate:   in.ExpectedDate,
		Reason:         in.Reason,
	}
	if err := uc.repo.AddTransfer(transfer); err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// GetByID obtiene un traslado por ID (nil si no existe).
func (uc *TransferUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.repo.GetTransfer(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	return toTransferResponse(transfer), nil
}

// List lista todos los traslados.
func (uc *TransferUseCase) List() (*dto.TransferListResponse, error) {
	list, err := uc.repo.ListTransfers()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return &dto.TransferListResponse{Items: items}, nil
}

// Update edita un traslado no completado.
func (uc *TransferUseCase) Update(id string, in dto.UpdateTransferRequest) (*dto.TransferResponse, error) {
	transfer, err := uc.repo.GetTransfer(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		if !in.Quantity.IsPositive() {
			return nil, domain.Validation("quantity", "debe ser mayor que cero")
		}
		transfer.Quantity = *in.Quantity
	}
	if in.Status != nil {
		if !entity.ValidTransferStatus(*in.Status) {
			return nil, domain.Validation("status", "estado de traslado desconocido")
		}
		transfer.Status = *in.Status
	}
	if in.ExpectedDate != nil {
		transfer.ExpectedDate = in.ExpectedDate
	}
	if in.Reason != nil {
		transfer.Reason = *in.Reason
	}
	if err := uc.repo.UpdateTransfer(transfer); err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// Delete elimina el traslado por ID.
func (uc *TransferUseCase) Delete(id string) error {
	return uc.repo.DeleteTransfer(id)
}

// Complete completa el traslado: debita la sede origen y acredita la destino
// en una sola operación atómica. Id inexistente es un no-op silencioso.
func (uc *TransferUseCase) Complete(id string) (*dto.TransferResponse, error) {
	if err := uc.repo.CompleteTransfer(id); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	return &dto.TransferResponse{
		ID:               t.ID,
		ItemID:           t.ItemID,
		ItemName:         t.ItemName,
		FromLocationID:   t.FromLocationID,
		FromLocationName: t.FromLocationName,
		ToLocationID:     t.ToLocationID,
		ToLocationName:   t.ToLocationName,
		Quantity:         t.Quantity,
		Status:           t.Status,
		RequestDate:      t.RequestDate,
		ExpectedDate:     t.ExpectedDate,
		Reason:           t.Reason,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
