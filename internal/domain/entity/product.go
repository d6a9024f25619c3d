package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Price y Stock nunca son negativos después de una operación exitosa.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Stock       int
	Category    string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
