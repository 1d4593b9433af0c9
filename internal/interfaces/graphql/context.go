package graphql

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

type ctxKey int

const callerKey ctxKey = iota

// WithCaller adjunta la identidad del caller al contexto de la petición.
// La capa HTTP lo invoca una sola vez tras verificar el token.
func WithCaller(ctx context.Context, caller entity.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext extrae la identidad del caller. Caller cero (anónimo)
// cuando no hubo token válido.
func CallerFromContext(ctx context.Context) entity.Caller {
	caller, _ := ctx.Value(callerKey).(entity.Caller)
	return caller
}
