package entity

// Caller identidad del vendedor autenticado derivada del token verificado.
// Se pasa explícitamente a cada caso de uso; nunca vive como estado global.
type Caller struct {
	ID      ID
	Email   string
	Name    string
	Surname string
}

// IsAnonymous reporta si no hubo token válido en la petición.
func (c Caller) IsAnonymous() bool { return c.ID.IsZero() }
