package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/inventario-backend/internal/application/dto"
	"github.com/jortega/inventario-backend/internal/application/usecase"
	"github.com/jortega/inventario-backend/internal/domain"
)

func newSupplierUC(t *testing.T) (*usecase.SupplierUseCase, *usecase.ProductUseCase, *fakeSupplierRepo) {
	t.Helper()
	supplierRepo := &fakeSupplierRepo{}
	productRepo := &fakeProductRepo{}
	return usecase.NewSupplierUseCase(supplierRepo, productRepo),
		usecase.NewProductUseCase(productRepo), supplierRepo
}

// Crear sin nombre: ValidationError citando name.
func TestSupplierCreate_SinNombre(t *testing.T) {
	uc, _, _ := newSupplierUC(t)

	_, err := uc.Create(dto.CreateSupplierRequest{Phone: "300123"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Fields[0].Field)
}

// Referencias a productos con sintaxis inválida se rechazan al escribir.
func TestSupplierCreate_ReferenciasMalformadas(t *testing.T) {
	uc, _, _ := newSupplierUC(t)

	_, err := uc.Create(dto.CreateSupplierRequest{
		Name:       "Proveedor Uno",
		ProductIDs: []string{"no-es-uuid"},
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "product_ids", verr.Fields[0].Field)
}

// La lectura expande las referencias vigentes y omite las colgantes sin error.
func TestSupplierGet_OmiteReferenciaColgante(t *testing.T) {
	uc, productUC, _ := newSupplierUC(t)

	product, err := productUC.Create(laptopRequest())
	require.NoError(t, err)

	ghost := uuid.New().String()
	created, err := uc.Create(dto.CreateSupplierRequest{
		Name:       "Proveedor Uno",
		ProductIDs: []string{product.ID, ghost},
	})
	require.NoError(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{product.ID, ghost}, got.ProductIDs, "la lista almacenada no se recorta")
	require.Len(t, got.Products, 1, "solo se expande la referencia vigente")
	assert.Equal(t, product.ID, got.Products[0].ID)

	// Al eliminar el producto referenciado, la lectura sigue funcionando y la
	// expansión queda vacía: la referencia colgante no es un error.
	_, err = productUC.Delete(product.ID)
	require.NoError(t, err)

	got, err = uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Products)
	assert.Equal(t, []string{product.ID, ghost}, got.ProductIDs)
}

// List expande los productos de cada proveedor.
func TestSupplierList_Expande(t *testing.T) {
	uc, productUC, _ := newSupplierUC(t)

	product, err := productUC.Create(laptopRequest())
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateSupplierRequest{
		Name:       "Proveedor Uno",
		ProductIDs: []string{product.ID},
	})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Products, 1)
	assert.Equal(t, product.ID, list[0].Products[0].ID)
}

// ProductIDs presente en el update reemplaza la lista completa.
func TestSupplierUpdate_ReemplazaReferencias(t *testing.T) {
	uc, productUC, repo := newSupplierUC(t)

	p1, err := productUC.Create(laptopRequest())
	require.NoError(t, err)
	p2, err := productUC.Create(laptopRequest())
	require.NoError(t, err)

	created, err := uc.Create(dto.CreateSupplierRequest{
		Name:       "Proveedor Uno",
		ProductIDs: []string{p1.ID},
	})
	require.NoError(t, err)

	nuevos := []string{p2.ID}
	out, err := uc.Update(created.ID, dto.UpdateSupplierRequest{ProductIDs: &nuevos})
	require.NoError(t, err)
	assert.Equal(t, []string{p2.ID}, out.ProductIDs)
	assert.Equal(t, []string{p2.ID}, repo.items[0].ProductIDs)
}

// Update parcial que no toca ProductIDs las conserva.
func TestSupplierUpdate_ConservaReferencias(t *testing.T) {
	uc, productUC, _ := newSupplierUC(t)

	p1, err := productUC.Create(laptopRequest())
	require.NoError(t, err)
	created, err := uc.Create(dto.CreateSupplierRequest{
		Name:       "Proveedor Uno",
		ProductIDs: []string{p1.ID},
	})
	require.NoError(t, err)

	phone := "300456"
	out, err := uc.Update(created.ID, dto.UpdateSupplierRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "300456", out.Phone)
	assert.Equal(t, []string{p1.ID}, out.ProductIDs)
}

func TestSupplierDelete_Eco(t *testing.T) {
	uc, _, repo := newSupplierUC(t)

	created, err := uc.Create(dto.CreateSupplierRequest{Name: "Proveedor Uno"})
	require.NoError(t, err)

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Empty(t, repo.items)

	missing, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
