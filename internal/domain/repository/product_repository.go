package repository

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id entity.ID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id entity.ID) error
	// Search busca por texto sobre el nombre del producto (índice de texto), máximo limit resultados.
	Search(ctx context.Context, text string, limit int) ([]*entity.Product, error)
	// ReserveStock descuenta quantity de la existencia SOLO si stock >= quantity,
	// en una única operación condicional. Retorna domain.ErrNotFound si el
	// producto no existe y *domain.InsufficientStockError si no alcanza.
	ReserveStock(ctx context.Context, id entity.ID, quantity int) error
	// ReleaseStock devuelve quantity a la existencia (compensación de una reserva previa).
	ReleaseStock(ctx context.Context, id entity.ID, quantity int) error
}
