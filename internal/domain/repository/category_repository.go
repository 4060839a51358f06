package repository

import "github.com/camivargas/cafestock-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
// DeleteCategory nunca borra items: los reasigna a la categoría reservada
// "Sin categoría". La categoría reservada no puede borrarse ni renombrarse.
type CategoryRepository interface {
	AddCategory(category *entity.Category) error
	GetCategory(id string) (*entity.Category, error)
	GetCategoryByName(name string) (*entity.Category, error)
	ListCategories() ([]*entity.Category, error)
	UpdateCategory(category *entity.Category) error
	DeleteCategory(id string) error
}
