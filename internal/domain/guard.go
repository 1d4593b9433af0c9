package domain

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// RequireOwner falla con ErrForbidden cuando el recurso no pertenece al caller.
// La comparación es tipada; un ID vacío nunca autoriza.
func RequireOwner(ownerID entity.ID, caller entity.Caller) error {
	if !ownerID.Equal(caller.ID) {
		return ErrForbidden
	}
	return nil
}
