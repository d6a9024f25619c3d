package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jortega/inventario-backend/internal/domain"
	"github.com/jortega/inventario-backend/internal/domain/entity"
)

func fieldNames(fields []domain.FieldError) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Field)
	}
	return out
}

func TestValidateProduct(t *testing.T) {
	valid := entity.Product{
		Name:     "Laptop",
		Price:    decimal.NewFromInt(1200),
		Stock:    3,
		Category: "Electrónica",
	}
	assert.Empty(t, domain.ValidateProduct(&valid))

	// Precio cero es válido; negativo no.
	free := valid
	free.Price = decimal.Zero
	assert.Empty(t, domain.ValidateProduct(&free))

	bad := entity.Product{Price: decimal.NewFromInt(-1), Stock: -2}
	assert.ElementsMatch(t,
		[]string{"name", "price", "stock", "category"},
		fieldNames(domain.ValidateProduct(&bad)),
		"se reportan todos los campos inválidos, no solo el primero")
}

func TestValidateSupplier(t *testing.T) {
	assert.Empty(t, domain.ValidateSupplier(&entity.Supplier{Name: "Proveedor Uno"}))
	assert.Equal(t, []string{"name"}, fieldNames(domain.ValidateSupplier(&entity.Supplier{})))
}

func TestValidateUser(t *testing.T) {
	valid := entity.User{Name: "Ana", Email: "ana@example.com", Role: entity.RoleAccountant}
	assert.Empty(t, domain.ValidateUser(&valid))

	badRole := valid
	badRole.Role = "Supervisor"
	assert.Equal(t, []string{"role"}, fieldNames(domain.ValidateUser(&badRole)))

	assert.ElementsMatch(t,
		[]string{"name", "email", "role"},
		fieldNames(domain.ValidateUser(&entity.User{})))
}

func TestIsValidRole(t *testing.T) {
	for _, role := range entity.ValidRoles {
		assert.True(t, entity.IsValidRole(role), role)
	}
	assert.False(t, entity.IsValidRole("administrator"), "la comparación distingue mayúsculas")
	assert.False(t, entity.IsValidRole(""))
}
