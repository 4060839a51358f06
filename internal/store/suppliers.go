package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*Store)(nil)

// AddSupplier agrega un proveedor con id recién generado.
func (s *Store) AddSupplier(supplier *entity.Supplier) error {
	now := time.Now()
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	s.mu.Lock()
	cp := *supplier
	s.st.suppliers = append(s.st.suppliers, &cp)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("addSupplier", snap)
	return nil
}

// GetSupplier obtiene un proveedor por id (nil si no existe).
func (s *Store) GetSupplier(id string) (*entity.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.st.suppliers {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// ListSuppliers devuelve todos los proveedores en orden de creación.
func (s *Store) ListSuppliers() ([]*entity.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Supplier, len(s.st.suppliers))
	for i, p := range s.st.suppliers {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

// UpdateSupplier reemplaza los campos del proveedor por id.
func (s *Store) UpdateSupplier(supplier *entity.Supplier) error {
	s.mu.Lock()
	var found *entity.Supplier
	for _, p := range s.st.suppliers {
		if p.ID == supplier.ID {
			found = p
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	found.Name = supplier.Name
	found.Contact = supplier.Contact
	found.Email = supplier.Email
	found.Phone = supplier.Phone
	found.UpdatedAt = time.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("updateSupplier", snap)
	return nil
}

// DeleteSupplier elimina el proveedor. Items y órdenes que lo referencien
// conservan el id (snapshot desnormalizado, sin cascada).
func (s *Store) DeleteSupplier(id string) error {
	s.mu.Lock()
	kept := s.st.suppliers[:0]
	for _, p := range s.st.suppliers {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.st.suppliers = kept
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("deleteSupplier", snap)
	return nil
}
