package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isWellFormedID verifica la sintaxis UUID de un identificador. Un id
// malformado en una búsqueda individual se trata como no encontrado, nunca
// como error de la base.
func isWellFormedID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
