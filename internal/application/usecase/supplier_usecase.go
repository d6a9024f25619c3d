package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jortega/inventario-backend/internal/application/dto"
	"github.com/jortega/inventario-backend/internal/domain"
	"github.com/jortega/inventario-backend/internal/domain/entity"
	"github.com/jortega/inventario-backend/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores. Las lecturas expanden
// las referencias a productos que aún existen; las colgantes se omiten.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create valida y persiste un nuevo proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		ProductIDs:  in.ProductIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if supplier.ProductIDs == nil {
		supplier.ProductIDs = []string{}
	}
	fields := domain.ValidateSupplier(supplier)
	if bad := malformedIDs(supplier.ProductIDs); len(bad) > 0 {
		fields = append(fields, domain.FieldError{Field: "product_ids", Reason: "identificadores inválidos"})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Item: -1, Fields: fields}
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier, nil), nil
}

// List devuelve todos los proveedores con sus productos expandidos.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		products, err := uc.expand(s)
		if err != nil {
			return nil, err
		}
		out = append(out, *toSupplierResponse(s, products))
	}
	return out, nil
}

// GetByID obtiene un proveedor con sus productos expandidos. Devuelve nil, nil si no existe.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	products, err := uc.expand(supplier)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier, products), nil
}

// Update aplica una actualización parcial. ProductIDs presente reemplaza la
// lista completa de referencias.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	changed := false
	if in.Name != nil {
		supplier.Name = *in.Name
		changed = true
	}
	if in.ContactName != nil {
		supplier.ContactName = *in.ContactName
		changed = true
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
		changed = true
	}
	if in.Email != nil {
		supplier.Email = *in.Email
		changed = true
	}
	if in.Address != nil {
		supplier.Address = *in.Address
		changed = true
	}
	if in.ProductIDs != nil {
		supplier.ProductIDs = *in.ProductIDs
		if supplier.ProductIDs == nil {
			supplier.ProductIDs = []string{}
		}
		changed = true
	}
	if !changed {
		return toSupplierResponse(supplier, nil), nil
	}
	fields := domain.ValidateSupplier(supplier)
	if bad := malformedIDs(supplier.ProductIDs); len(bad) > 0 {
		fields = append(fields, domain.FieldError{Field: "product_ids", Reason: "identificadores inválidos"})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Item: -1, Fields: fields}
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier, nil), nil
}

// Delete elimina un proveedor y devuelve el registro eliminado, o nil, nil si no existe.
func (uc *SupplierUseCase) Delete(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier, nil), nil
}

// expand resuelve las referencias del proveedor a productos vigentes,
// omitiendo sin error las que ya no existen.
func (uc *SupplierUseCase) expand(s *entity.Supplier) ([]dto.ProductResponse, error) {
	if len(s.ProductIDs) == 0 {
		return nil, nil
	}
	products, err := uc.productRepo.GetByIDs(s.ProductIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier, products []dto.ProductResponse) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		ProductIDs:  s.ProductIDs,
		Products:    products,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
