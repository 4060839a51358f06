package repository

import "github.com/camivargas/cafestock-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	AddSupplier(supplier *entity.Supplier) error
	GetSupplier(id string) (*entity.Supplier, error)
	ListSuppliers() ([]*entity.Supplier, error)
	UpdateSupplier(supplier *entity.Supplier) error
	DeleteSupplier(id string) error
}
