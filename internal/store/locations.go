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

var _ repository.LocationRepository = (*Store)(nil)

// AddLocation agrega una sede con id recién generado y rellena una entrada de
// stock en cero en todos los items existentes, manteniendo el invariante
// "claves del mapa de stock == sedes existentes" en todo momento.
func (s *Store) AddLocation(location *entity.Location) error {
	now := time.Now()
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	location.CreatedAt = now
	location.UpdatedAt = now

	s.mu.Lock()
	cp := *location
	s.st.locations = append(s.st.locations, &cp)
	for _, it := range s.st.items {
		if _, ok := it.Locations[cp.ID]; !ok {
			it.Locations[cp.ID] = entity.StockEntry{
				Quantity: decimal.Zero,
				Status:   inventory.Classify(decimal.Zero, it.MinStock),
			}
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("addLocation", snap)
	return nil
}

// GetLocation obtiene una sede por id (nil si no existe).
func (s *Store) GetLocation(id string) (*entity.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.st.locations {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

// ListLocations devuelve todas las sedes en orden de creación.
func (s *Store) ListLocations() ([]*entity.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Location, len(s.st.locations))
	for i, l := range s.st.locations {
		cp := *l
		out[i] = &cp
	}
	return out, nil
}

// UpdateLocation reemplaza los campos de la sede por id.
func (s *Store) UpdateLocation(location *entity.Location) error {
	s.mu.Lock()
	var found *entity.Location
	for _, l := range s.st.locations {
		if l.ID == location.ID {
			found = l
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	found.Name = location.Name
	found.Address = location.Address
	found.Manager = location.Manager
	found.Phone = location.Phone
	found.UpdatedAt = time.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("updateLocation", snap)
	return nil
}

// DeleteLocation elimina la sede y quita su clave del mapa de stock de todos
// los items. No reasigna órdenes, traslados ni miembros del equipo que sigan
// referenciando el id eliminado, y no toca el selector de sede actual (puede
// quedar apuntando a nada; responsabilidad del caller).
func (s *Store) DeleteLocation(id string) error {
	s.mu.Lock()
	kept := s.st.locations[:0]
	for _, l := range s.st.locations {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.st.locations = kept
	for _, it := range s.st.items {
		delete(it.Locations, id)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("deleteLocation", snap)
	return nil
}
