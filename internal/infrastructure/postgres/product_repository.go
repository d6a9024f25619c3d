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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, name, price, stock, category, description, image_url, created_at, updated_at"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Stock, product.Category,
		product.Description, product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// CreateMany inserta el lote completo dentro de una transacción: o entran
// todos los productos o ninguno.
func (r *ProductRepo) CreateMany(products []*entity.Product) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, p := range products {
		if _, err := tx.Exec(ctx, query,
			p.ID, p.Name, p.Price, p.Stock, p.Category,
			p.Description, p.ImageURL, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert product batch: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe o el id está malformado.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	if !isWellFormedID(id) {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category,
		&p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByIDs resuelve los ids a productos existentes preservando el orden de
// entrada. Los ids que no resuelven (colgantes o malformados) se omiten sin error.
func (r *ProductRepo) GetByIDs(ids []string) ([]*entity.Product, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if isWellFormedID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1::uuid[])`
	rows, err := r.pool.Query(context.Background(), query, valid)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	found, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	ordered := make([]*entity.Product, 0, len(found))
	for _, id := range valid {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// Update actualiza un producto existente (merge ya resuelto por el caso de uso).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, stock = $4, category = $5,
			description = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Stock, product.Category,
		product.Description, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto y devuelve el registro eliminado, o nil, nil si no existe.
func (r *ProductRepo) Delete(id string) (*entity.Product, error) {
	if !isWellFormedID(id) {
		return nil, nil
	}
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category,
		&p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &p, nil
}

// DeleteMany elimina por id (best-effort: un id bien formado pero inexistente
// no es error) y reporta la cantidad removida. La sintaxis de los ids ya fue
// validada por el orquestador de lotes.
func (r *ProductRepo) DeleteMany(ids []string) (int64, error) {
	cmd, err := r.pool.Exec(context.Background(),
		`DELETE FROM products WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category,
			&p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
