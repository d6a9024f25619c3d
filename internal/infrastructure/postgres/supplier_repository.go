package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jortega/inventario-backend/internal/domain/entity"
	"github.com/jortega/inventario-backend/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = "id, name, contact_name, phone, email, address, product_ids, created_at, updated_at"

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
// product_ids se guarda como TEXT[]: relación sin FK, las referencias
// colgantes son válidas en reposo y se resuelven al expandir.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactName, supplier.Phone,
		supplier.Email, supplier.Address, supplier.ProductIDs,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// List devuelve todos los proveedores en orden de inserción.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene un proveedor por ID. Devuelve nil, nil si no existe o el id está malformado.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if !isWellFormedID(id) {
		return nil, nil
	}
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	s, err := scanSupplier(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, contact_name = $3, phone = $4, email = $5,
			address = $6, product_ids = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactName, supplier.Phone,
		supplier.Email, supplier.Address, supplier.ProductIDs, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor y devuelve el registro eliminado, o nil, nil si no existe.
func (r *SupplierRepo) Delete(id string) (*entity.Supplier, error) {
	if !isWellFormedID(id) {
		return nil, nil
	}
	query := `DELETE FROM suppliers WHERE id = $1 RETURNING ` + supplierColumns
	s, err := scanSupplier(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete supplier: %w", err)
	}
	return s, nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.ContactName, &s.Phone, &s.Email,
		&s.Address, &s.ProductIDs, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
