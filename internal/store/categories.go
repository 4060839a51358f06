package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*Store)(nil)

// AddCategory agrega una categoría con id surrogate recién generado.
func (s *Store) AddCategory(category *entity.Category) error {
	now := time.Now()
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.CreatedAt = now
	category.UpdatedAt = now

	s.mu.Lock()
	for _, c := range s.st.categories {
		if c.Name == category.Name {
			s.mu.Unlock()
			return domain.ErrDuplicate
		}
	}
	cp := *category
	s.st.categories = append(s.st.categories, &cp)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("addCategory", snap)
	return nil
}

// GetCategory obtiene una categoría por id (nil si no existe).
func (s *Store) GetCategory(id string) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c := s.categoryByIDLocked(id); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

// GetCategoryByName obtiene una categoría por nombre exacto (nil si no existe).
func (s *Store) GetCategoryByName(name string) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.st.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// ListCategories devuelve todas las categorías en orden de creación.
func (s *Store) ListCategories() ([]*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Category, len(s.st.categories))
	for i, c := range s.st.categories {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

// UpdateCategory renombra o recolorea la categoría. Gracias al id surrogate
// no hay cascada: los items referencian CategoryID y el nombre se resuelve al
// leer. La categoría reservada no se puede renombrar.
func (s *Store) UpdateCategory(category *entity.Category) error {
	s.mu.Lock()
	found := s.categoryByIDLocked(category.ID)
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	if found.Name == entity.UncategorizedName && category.Name != entity.UncategorizedName {
		s.mu.Unlock()
		return domain.ErrCategoryReserved
	}
	found.Name = category.Name
	found.Color = category.Color
	found.UpdatedAt = time.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("updateCategory", snap)
	return nil
}

// DeleteCategory elimina la categoría y reasigna sus items a la categoría
// reservada "Sin categoría". Nunca borra items.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	found := s.categoryByIDLocked(id)
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	if found.Name == entity.UncategorizedName {
		s.mu.Unlock()
		return domain.ErrCategoryReserved
	}
	var uncat *entity.Category
	for _, c := range s.st.categories {
		if c.Name == entity.UncategorizedName {
			uncat = c
			break
		}
	}
	kept := s.st.categories[:0]
	for _, c := range s.st.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.st.categories = kept
	if uncat != nil {
		for _, it := range s.st.items {
			if it.CategoryID == id {
				it.CategoryID = uncat.ID
			}
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("deleteCategory", snap)
	return nil
}

// categoryByIDLocked busca la categoría dentro del lock.
func (s *Store) categoryByIDLocked(id string) *entity.Category {
	for _, c := range s.st.categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}
