package usecase

import (
	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría nueva. Color fuera de la paleta -> validación.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("name", "el nombre es obligatorio")
	}
	if in.Color == "" {
		in.Color = entity.ColorSlate
	}
	if !entity.ValidColor(in.Color) {
		return nil, domain.Validation("color", "color fuera de la paleta")
	}
	category := &entity.Category{Name: in.Name, Color: in.Color}
	if err := uc.repo.AddCategory(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID (nil si no existe).
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetCategory(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListCategories()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Update renombra o recolorea la categoría (sin cascada sobre items).
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetCategory(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validation("name", "el nombre no puede quedar vacío")
		}
		category.Name = *in.Name
	}
	if in.Color != nil {
		if !entity.ValidColor(*in.Color) {
			return nil, domain.Validation("color", "color fuera de la paleta")
		}
		category.Color = *in.Color
	}
	if err := uc.repo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina la categoría; sus items quedan en "Sin categoría".
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.DeleteCategory(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
