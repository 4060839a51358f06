package entity

import "time"

// Location representa una sede o punto de venta donde se almacena inventario (multi-sede).
type Location struct {
	ID        string
	Name      string
	Address   string
	Manager   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
