package repository

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para Service (DIP).
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id entity.ID) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	List(ctx context.Context) ([]*entity.Service, error)
	Delete(ctx context.Context, id entity.ID) error
}
