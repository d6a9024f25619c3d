package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jortega/inventario-backend/internal/application/dto"
	"github.com/jortega/inventario-backend/internal/domain"
	"github.com/jortega/inventario-backend/internal/domain/entity"
	"github.com/jortega/inventario-backend/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y por lote para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y persiste un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := buildProduct(in, -1)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// CreateBatch valida cada item en orden de entrada y, solo si todos pasan,
// hace un único insert por lote (todo o nada). El primer item inválido
// aborta el lote completo sin ningún efecto en la base.
func (uc *ProductUseCase) CreateBatch(in []dto.CreateProductRequest) ([]dto.ProductResponse, error) {
	if len(in) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	products := make([]*entity.Product, 0, len(in))
	for i, item := range in {
		p, err := buildProduct(item, i)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := uc.repo.CreateMany(products); err != nil {
		return nil, err
	}
	// Respuestas en el mismo orden de envío.
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian.
// Un payload vacío devuelve el registro sin modificar (no toca la base).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	changed := false
	if in.Name != nil {
		product.Name = *in.Name
		changed = true
	}
	if in.Price != nil {
		product.Price = *in.Price
		changed = true
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
		changed = true
	}
	if in.Category != nil {
		product.Category = *in.Category
		changed = true
	}
	if in.Description != nil {
		product.Description = *in.Description
		changed = true
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
		changed = true
	}
	if !changed {
		return toProductResponse(product), nil
	}
	if fields := domain.ValidateProduct(product); len(fields) > 0 {
		return nil, &domain.ValidationError{Item: -1, Fields: fields}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto y devuelve el registro eliminado, o nil, nil si no existe.
func (uc *ProductUseCase) Delete(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// DeleteBatch valida la sintaxis de todos los ids (el lote completo se
// rechaza si alguno está malformado) y luego elimina best-effort, reportando
// la cantidad realmente removida.
func (uc *ProductUseCase) DeleteBatch(ids []string) (int64, error) {
	if err := checkBatchIDs(ids); err != nil {
		return 0, err
	}
	return uc.repo.DeleteMany(ids)
}

// buildProduct valida el payload candidato y produce el registro tipado con
// id y timestamps asignados. item es el índice dentro de un lote (-1 fuera).
func buildProduct(in dto.CreateProductRequest, item int) (*entity.Product, error) {
	var fields []domain.FieldError
	if in.Price == nil {
		fields = append(fields, domain.FieldError{Field: "price", Reason: "requerido"})
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Stock:       0,
		Category:    in.Category,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	fields = append(fields, domain.ValidateProduct(product)...)
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Item: item, Fields: fields}
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
