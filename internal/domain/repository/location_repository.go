package repository

import "github.com/camivargas/cafestock-api/internal/domain/entity"

// LocationRepository puerto de persistencia para sedes.
// DeleteLocation cascada: elimina la clave de la sede del mapa de stock de
// todos los items. AddLocation rellena una StockEntry en cero en todos los
// items existentes para mantener el invariante "claves del mapa == sedes".
type LocationRepository interface {
	AddLocation(location *entity.Location) error
	GetLocation(id string) (*entity.Location, error)
	ListLocations() ([]*entity.Location, error)
	UpdateLocation(location *entity.Location) error
	DeleteLocation(id string) error
}
