package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*Store)(nil)

// AddOrder agrega una orden de compra: id fresco, estado pending, snapshot
// del nombre del item y Cost = item.Cost × Quantity al momento de crearla
// (no se recalcula después). Sin efecto sobre el stock.
func (s *Store) AddOrder(order *entity.Order) error {
	now := time.Now()
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = entity.OrderPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = now
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	s.mu.Lock()
	it := s.itemByIDLocked(order.ItemID)
	if it == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	order.ItemName = it.Name
	order.Cost = it.Cost.Mul(order.Quantity)
	cp := *order
	s.st.orders = append(s.st.orders, &cp)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("addOrder", snap)
	return nil
}

// GetOrder obtiene una orden por id (nil si no existe).
func (s *Store) GetOrder(id string) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.st.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

// ListOrders devuelve todas las órdenes en orden de creación.
func (s *Store) ListOrders() ([]*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Order, len(s.st.orders))
	for i, o := range s.st.orders {
		cp := *o
		out[i] = &cp
	}
	return out, nil
}

// UpdateOrder reemplaza estado, cantidad y fechas de la orden por id. El
// snapshot de ItemName y el Cost de creación se conservan.
func (s *Store) UpdateOrder(order *entity.Order) error {
	s.mu.Lock()
	var found *entity.Order
	for _, o := range s.st.orders {
		if o.ID == order.ID {
			found = o
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	found.Quantity = order.Quantity
	found.Status = order.Status
	found.ExpectedDelivery = order.ExpectedDelivery
	found.SupplierID = order.SupplierID
	found.UpdatedAt = time.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("updateOrder", snap)
	return nil
}

// DeleteOrder elimina la orden por id.
func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	kept := s.st.orders[:0]
	for _, o := range s.st.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.st.orders = kept
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("deleteOrder", snap)
	return nil
}
