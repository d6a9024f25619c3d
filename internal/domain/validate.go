package domain

import (
	"github.com/jortega/inventario-backend/internal/domain/entity"
)

// Validadores puros por entidad: reciben el registro candidato ya tipado y
// devuelven la lista completa de campos inválidos (no solo el primero).
// La unicidad no se decide aquí; requiere consultar estado existente.

// ValidateProduct verifica los invariantes de Product.
func ValidateProduct(p *entity.Product) []FieldError {
	var fields []FieldError
	if p.Name == "" {
		fields = append(fields, FieldError{Field: "name", Reason: "requerido"})
	}
	if p.Price.IsNegative() {
		fields = append(fields, FieldError{Field: "price", Reason: "debe ser >= 0"})
	}
	if p.Stock < 0 {
		fields = append(fields, FieldError{Field: "stock", Reason: "debe ser >= 0"})
	}
	if p.Category == "" {
		fields = append(fields, FieldError{Field: "category", Reason: "requerido"})
	}
	return fields
}

// ValidateSupplier verifica los invariantes de Supplier.
func ValidateSupplier(s *entity.Supplier) []FieldError {
	var fields []FieldError
	if s.Name == "" {
		fields = append(fields, FieldError{Field: "name", Reason: "requerido"})
	}
	return fields
}

// ValidateUser verifica los invariantes de User (sin unicidad de email).
func ValidateUser(u *entity.User) []FieldError {
	var fields []FieldError
	if u.Name == "" {
		fields = append(fields, FieldError{Field: "name", Reason: "requerido"})
	}
	if u.Email == "" {
		fields = append(fields, FieldError{Field: "email", Reason: "requerido"})
	}
	if u.Role == "" {
		fields = append(fields, FieldError{Field: "role", Reason: "requerido"})
	} else if !entity.IsValidRole(u.Role) {
		fields = append(fields, FieldError{Field: "role", Reason: "rol no permitido"})
	}
	return fields
}
