package repository

import "github.com/camivargas/cafestock-api/internal/domain/entity"

// TransferRepository puerto de persistencia para traslados entre sedes.
//
// CompleteTransfer marca el traslado como completed, debita la sede origen
// (piso de cero) y acredita la destino en una sola operación atómica,
// recalculando el estado de ambas entradas. Si el id no existe es un no-op
// silencioso (el estado no cambia y no se devuelve error). Un traslado ya
// completado o cancelado tampoco se vuelve a aplicar.
type TransferRepository interface {
	AddTransfer(transfer *entity.Transfer) error
	GetTransfer(id string) (*entity.Transfer, error)
	ListTransfers() ([]*entity.Transfer, error)
	UpdateTransfer(transfer *entity.Transfer) error
	DeleteTransfer(id string) error
	CompleteTransfer(id string) error
}
