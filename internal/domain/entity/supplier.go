package entity

import "time"

// Supplier representa un proveedor. ProductIDs es una lista ordenada de
// referencias débiles a productos: no hay cascade al eliminar un producto,
// las referencias colgantes se toleran y se omiten al expandir.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	ProductIDs  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
