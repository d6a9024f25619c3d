package repository

import "github.com/jortega/inventario-backend/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve nil, nil cuando el producto no existe o el id está malformado.
type ProductRepository interface {
	Create(product *entity.Product) error
	// CreateMany inserta el lote completo o nada (una sola transacción).
	CreateMany(products []*entity.Product) error
	List() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	// GetByIDs devuelve los productos existentes entre los ids dados,
	// preservando el orden de entrada y omitiendo los que no resuelven.
	GetByIDs(ids []string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete devuelve el registro eliminado, o nil, nil si no existe.
	Delete(id string) (*entity.Product, error)
	// DeleteMany elimina best-effort por id y reporta cuántos removió.
	DeleteMany(ids []string) (int64, error)
}
