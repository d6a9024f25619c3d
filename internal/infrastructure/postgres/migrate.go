package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema mínimo: tres colecciones independientes. La única relación entre
// colecciones es suppliers.product_ids (referencias débiles, sin FK a propósito:
// eliminar un producto no limpia las listas de proveedores).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		price       NUMERIC(14,2) NOT NULL CHECK (price >= 0),
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		category    TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id           UUID PRIMARY KEY,
		name         TEXT NOT NULL,
		contact_name TEXT NOT NULL DEFAULT '',
		phone        TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL DEFAULT '',
		address      TEXT NOT NULL DEFAULT '',
		product_ids  TEXT[] NOT NULL DEFAULT '{}',
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema crea las tablas si no existen (bootstrap al arrancar).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
