package entity

// ID identificador de entidad. Tipo propio para que las comparaciones de
// pertenencia sean tipadas y no coerciones implícitas de strings.
type ID string

// String devuelve el valor crudo del identificador.
func (id ID) String() string { return string(id) }

// IsZero reporta si el identificador está vacío.
func (id ID) IsZero() bool { return id == "" }

// Equal compara dos identificadores. Un ID vacío nunca es igual a nada.
func (id ID) Equal(other ID) bool { return !id.IsZero() && id == other }
