package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor. ProductIDs es la
// lista opcional de productos suministrados (referencias, sin propiedad).
type CreateSupplierRequest struct {
	Name        string   `json:"name"`
	ContactName string   `json:"contact_name"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	ProductIDs  []string `json:"product_ids"`
}

// UpdateSupplierRequest actualización parcial; ProductIDs presente reemplaza
// la lista completa.
type UpdateSupplierRequest struct {
	Name        *string   `json:"name"`
	ContactName *string   `json:"contact_name"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	Address     *string   `json:"address"`
	ProductIDs  *[]string `json:"product_ids"`
}

// SupplierResponse salida de un proveedor. En lecturas, Products trae los
// productos referenciados que aún existen (los colgantes se omiten sin error).
type SupplierResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	ContactName string            `json:"contact_name,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Email       string            `json:"email,omitempty"`
	Address     string            `json:"address,omitempty"`
	ProductIDs  []string          `json:"product_ids"`
	Products    []ProductResponse `json:"products,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
