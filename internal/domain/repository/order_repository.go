package repository

import "github.com/camivargas/cafestock-api/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes de compra.
// Crear una orden no tiene efecto sobre el stock: la entrada de mercancía se
// registra después con StockRepository.AdjustStock.
type OrderRepository interface {
	AddOrder(order *entity.Order) error
	GetOrder(id string) (*entity.Order, error)
	ListOrders() ([]*entity.Order, error)
	UpdateOrder(order *entity.Order) error
	DeleteOrder(id string) error
}
