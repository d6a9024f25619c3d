package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price es obligatorio
// (puntero para distinguir ausente de cero); Stock ausente vale 0.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
}

// UpdateProductRequest actualización parcial: solo los campos presentes cambian.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
