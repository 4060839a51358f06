package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/inventory"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*Store)(nil)

// AddTransfer agrega un traslado: id fresco, estado pending y snapshots
// desnormalizados del nombre del item y de las sedes origen/destino.
func (s *Store) AddTransfer(transfer *entity.Transfer) error {
	now := time.Now()
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	if transfer.Status == "" {
		transfer.Status = entity.TransferPending
	}
	if transfer.RequestDate.IsZero() {
		transfer.RequestDate = now
	}
	transfer.CreatedAt = now
	transfer.UpdatedAt = now

	s.mu.Lock()
	if it := s.itemByIDLocked(transfer.ItemID); it != nil {
		transfer.ItemName = it.Name
	}
	for _, l := range s.st.locations {
		if l.ID == transfer.FromLocationID {
			transfer.FromLocationName = l.Name
		}
		if l.ID == transfer.ToLocationID {
			transfer.ToLocationName = l.Name
		}
	}
	cp := *transfer
	s.st.transfers = append(s.st.transfers, &cp)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("addTransfer", snap)
	return nil
}

// GetTransfer obtiene un traslado por id (nil si no existe).
func (s *Store) GetTransfer(id string) (*entity.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t := s.transferByIDLocked(id); t != nil {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

// ListTransfers devuelve todos los traslados en orden de creación.
func (s *Store) ListTransfers() ([]*entity.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Transfer, len(s.st.transfers))
	for i, t := range s.st.transfers {
		cp := *t
		out[i] = &cp
	}
	return out, nil
}

// UpdateTransfer reemplaza estado, cantidad, fecha esperada y motivo del
// traslado por id. Un traslado completado no se puede editar.
func (s *Store) UpdateTransfer(transfer *entity.Transfer) error {
	s.mu.Lock()
	found := s.transferByIDLocked(transfer.ID)
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	if found.Status == entity.TransferCompleted {
		s.mu.Unlock()
		return domain.ErrConflict
	}
	found.Quantity = transfer.Quantity
	found.Status = transfer.Status
	found.ExpectedDate = transfer.ExpectedDate
	found.Reason = transfer.Reason
	found.UpdatedAt = time.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("updateTransfer", snap)
	return nil
}

// DeleteTransfer elimina el traslado por id.
func (s *Store) DeleteTransfer(id string) error {
	s.mu.Lock()
	kept := s.st.transfers[:0]
	for _, t := range s.st.transfers {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.st.transfers = kept
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("deleteTransfer", snap)
	return nil
}

// CompleteTransfer es la única transición con invariante compuesto: marca el
// traslado como completed, debita el stock del item en la sede origen (piso
// de cero) y acredita la misma cantidad en la destino, recalculando ambos
// estados. Las tres mutaciones ocurren dentro de la misma transición: ningún
// estado intermedio es observable. Id inexistente → no-op silencioso; un
// traslado ya completado o cancelado no se vuelve a aplicar. No existe
// operación de reversa.
func (s *Store) CompleteTransfer(id string) error {
	s.mu.Lock()
	t := s.transferByIDLocked(id)
	if t == nil {
		s.mu.Unlock()
		return nil
	}
	if t.Status == entity.TransferCompleted || t.Status == entity.TransferCancelled {
		s.mu.Unlock()
		return nil
	}
	now := time.Now()
	t.Status = entity.TransferCompleted
	t.UpdatedAt = now

	// El item pudo haberse eliminado después de solicitar el traslado; en ese
	// caso solo cambia el estado del traslado. Igual con sedes eliminadas: se
	// opera únicamente sobre las entradas que siguen existiendo.
	if it := s.itemByIDLocked(t.ItemID); it != nil {
		if from, ok := it.Locations[t.FromLocationID]; ok {
			from.Quantity = inventory.ClampQuantity(from.Quantity.Sub(t.Quantity))
			from.Status = inventory.Classify(from.Quantity, it.MinStock)
			it.Locations[t.FromLocationID] = from
		}
		if to, ok := it.Locations[t.ToLocationID]; ok {
			to.Quantity = to.Quantity.Add(t.Quantity)
			to.Status = inventory.Classify(to.Quantity, it.MinStock)
			it.Locations[t.ToLocationID] = to
		}
		it.UpdatedAt = now
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("completeTransfer", snap)
	return nil
}

// transferByIDLocked busca el traslado dentro del lock.
func (s *Store) transferByIDLocked(id string) *entity.Transfer {
	for _, t := range s.st.transfers {
		if t.ID == id {
			return t
		}
	}
	return nil
}
