package usecase

import (
	"github.com/google/uuid"
	"github.com/jortega/inventario-backend/internal/domain"
)

// Orquestación de lotes: las reglas compartidas por las operaciones multi-item.
// Un lote vacío se rechaza antes de inspeccionar ningún item; la validación
// por item es secuencial y en orden de entrada, para que el item culpable de
// un fallo sea siempre el primero que lo causa.

// checkBatchIDs valida la sintaxis de todos los ids de un lote de eliminación.
// Si hay algún id malformado, el lote completo se rechaza listando todos los
// malformados, sin intentar ninguna eliminación.
func checkBatchIDs(ids []string) error {
	if len(ids) == 0 {
		return domain.ErrEmptyBatch
	}
	var bad []string
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			bad = append(bad, id)
		}
	}
	if len(bad) > 0 {
		return &domain.InvalidIDsError{IDs: bad}
	}
	return nil
}

// malformedIDs devuelve los ids con sintaxis inválida de una lista de
// referencias a productos (proveedores).
func malformedIDs(ids []string) []string {
	var bad []string
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			bad = append(bad, id)
		}
	}
	return bad
}
