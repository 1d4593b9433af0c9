package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrForbidden          = errors.New("no tiene permisos sobre este recurso")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido o ausente")
	ErrInvalidInput       = errors.New("entrada inválida")
)

// InsufficientStockError indica que una línea de pedido excede la existencia
// disponible del producto. Nombra el producto ofensor con lo pedido y lo disponible.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("el artículo %s excede la cantidad disponible (pedido: %d, existencia: %d)",
		e.ProductName, e.Requested, e.Available)
}

// IsInsufficientStock reporta si err es un InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}
