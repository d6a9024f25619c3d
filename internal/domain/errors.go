package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo ya está registrado")
	ErrEmptyBatch         = errors.New("se espera un arreglo no vacío")
)

// FieldError describe un campo que violó una regla de validación.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError agrupa todos los campos inválidos de una entidad candidata.
// Item es el índice dentro de un lote, o -1 en operaciones individuales.
// Nunca se aplica una escritura parcial tras este error.
type ValidationError struct {
	Item   int
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	if e.Item >= 0 {
		return fmt.Sprintf("validación fallida en el item %d: %s", e.Item, strings.Join(names, ", "))
	}
	return "validación fallida: " + strings.Join(names, ", ")
}

// DuplicateEmailError señala un conflicto de unicidad sobre el email de User.
// Item es el índice del item culpable dentro de un lote, o -1 fuera de lote.
type DuplicateEmailError struct {
	Email string
	Item  int
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("el correo %s ya está registrado", e.Email)
}

// Is permite errors.Is(err, ErrEmailAlreadyExists).
func (e *DuplicateEmailError) Is(target error) bool {
	return target == ErrEmailAlreadyExists
}

// InvalidIDsError lista los identificadores con formato inválido de un lote.
// El lote completo se rechaza antes de intentar cualquier eliminación.
type InvalidIDsError struct {
	IDs []string
}

func (e *InvalidIDsError) Error() string {
	return "identificadores inválidos: " + strings.Join(e.IDs, ", ")
}
