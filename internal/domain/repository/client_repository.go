package repository

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id entity.ID) (*entity.Client, error)
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	List(ctx context.Context) ([]*entity.Client, error)
	ListByOwner(ctx context.Context, ownerID entity.ID) ([]*entity.Client, error)
	Delete(ctx context.Context, id entity.ID) error
}
