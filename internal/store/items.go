package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/inventory"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository  = (*Store)(nil)
	_ repository.StockRepository = (*Store)(nil)
)

// AddItem agrega un item con id recién generado y siembra su mapa de stock
// con una entrada por cada sede existente en este momento, todas con
// initialQuantity (piso de cero) y el estado derivado correspondiente.
func (s *Store) AddItem(item *entity.Item, initialQuantity decimal.Decimal) error {
	now := time.Now()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	qty := inventory.ClampQuantity(initialQuantity)
	status := inventory.Classify(qty, item.MinStock)

	s.mu.Lock()
	cp := *item
	cp.Locations = make(map[string]entity.StockEntry, len(s.st.locations))
	for _, l := range s.st.locations {
		cp.Locations[l.ID] = entity.StockEntry{Quantity: qty, Status: status}
	}
	s.st.items = append(s.st.items, &cp)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("addItem", snap)

	item.Locations = cp.CloneLocations()
	return nil
}

// GetItem obtiene un item por id con su mapa de stock clonado (nil si no existe).
func (s *Store) GetItem(id string) (*entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if it := s.itemByIDLocked(id); it != nil {
		cp := *it
		cp.Locations = it.CloneLocations()
		return &cp, nil
	}
	return nil, nil
}

// ListItems devuelve todos los items en orden de creación, con mapas clonados.
func (s *Store) ListItems() ([]*entity.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Item, 0, len(s.st.items))
	for _, it := range s.st.items {
		cp := *it
		cp.Locations = it.CloneLocations()
		out = append(out, &cp)
	}
	return out, nil
}

// UpdateItem reemplaza los campos del item por id preservando el mapa de
// stock intacto: una edición genérica nunca toca las cantidades por sede.
func (s *Store) UpdateItem(item *entity.Item) error {
	s.mu.Lock()
	found := s.itemByIDLocked(item.ID)
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	found.Name = item.Name
	found.CategoryID = item.CategoryID
	found.Unit = item.Unit
	found.MinStock = item.MinStock
	found.MaxStock = item.MaxStock
	found.Cost = item.Cost
	found.SupplierID = item.SupplierID
	found.ExpiryDate = item.ExpiryDate
	found.UpdatedAt = time.Now()
	// MinStock pudo cambiar: se rederiva el estado de cada entrada sin tocar
	// las cantidades.
	for locID, e := range found.Locations {
		e.Status = inventory.Classify(e.Quantity, found.MinStock)
		found.Locations[locID] = e
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("updateItem", snap)
	return nil
}

// DeleteItem elimina el item completo. No verifica órdenes ni traslados
// abiertos que lo referencien (conservan su snapshot desnormalizado).
func (s *Store) DeleteItem(id string) error {
	s.mu.Lock()
	kept := s.st.items[:0]
	for _, it := range s.st.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.st.items = kept
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("deleteItem", snap)
	return nil
}

// AdjustStock lee la cantidad actual en la sede, suma el ajuste (posiblemente
// negativo), aplica el piso de cero y recalcula el estado con el MinStock del
// item. El motivo del ajuste es metadato de UI y no se persiste en ningún
// historial. Devuelve la entrada resultante.
func (s *Store) AdjustStock(itemID, locationID string, adjustment decimal.Decimal) (*entity.StockEntry, error) {
	s.mu.Lock()
	it := s.itemByIDLocked(itemID)
	if it == nil {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	entry, ok := it.Locations[locationID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	entry.Quantity = inventory.ClampQuantity(entry.Quantity.Add(adjustment))
	entry.Status = inventory.Classify(entry.Quantity, it.MinStock)
	it.Locations[locationID] = entry
	it.UpdatedAt = time.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("adjustStock", snap)

	out := entry
	return &out, nil
}

// itemByIDLocked busca el item dentro del lock.
func (s *Store) itemByIDLocked(id string) *entity.Item {
	for _, it := range s.st.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}
