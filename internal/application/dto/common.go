package dto

import "github.com/jortega/inventario-backend/internal/domain"

// ErrorResponse cuerpo de error HTTP. Fields detalla los campos inválidos en
// errores de validación; IDs lista los identificadores malformados en lotes.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
	IDs     []string            `json:"ids,omitempty"`
}

// BatchDeleteResponse resultado de una eliminación por lote.
type BatchDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
