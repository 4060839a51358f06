package usecase

import (
	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para sedes.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una sede nueva. Todos los items reciben stock en cero para ella.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("name", "el nombre es obligatorio")
	}
	location := &entity.Location{
		Name:    in.Name,
		Address: in.Address,
		Manager: in.Manager,
		Phone:   in.Phone,
	}
	if err := uc.repo.AddLocation(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una sede por ID (nil si no existe).
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetLocation(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// List lista todas las sedes.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	list, err := uc.repo.ListLocations()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items}, nil
}

// Update actualiza los campos presentes en la petición.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetLocation(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validation("name", "el nombre no puede quedar vacío")
		}
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	if in.Manager != nil {
		location.Manager = *in.Manager
	}
	if in.Phone != nil {
		location.Phone = *in.Phone
	}
	if err := uc.repo.UpdateLocation(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Delete elimina la sede y su columna de stock en todos los items.
func (uc *LocationUseCase) Delete(id string) error {
	return uc.repo.DeleteLocation(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Address:   l.Address,
		Manager:   l.Manager,
		Phone:     l.Phone,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
