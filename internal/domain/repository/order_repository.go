package repository

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// ClientRanking un cliente con el total acumulado de sus pedidos completados.
type ClientRanking struct {
	ClientID entity.ID      `bson:"_id"`
	Total    float64        `bson:"total"`
	Client   *entity.Client `bson:"-"`
}

// SellerRanking un vendedor con el total acumulado de sus pedidos completados.
type SellerRanking struct {
	SellerID entity.ID    `bson:"_id"`
	Total    float64      `bson:"total"`
	Seller   *entity.User `bson:"-"`
}

// OrderRepository define el puerto de persistencia para Order (DIP),
// incluidas las agregaciones de reportes sobre pedidos completados.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id entity.ID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context) ([]*entity.Order, error)
	ListByOwner(ctx context.Context, ownerID entity.ID) ([]*entity.Order, error)
	ListByOwnerAndStatus(ctx context.Context, ownerID entity.ID, status string) ([]*entity.Order, error)
	Delete(ctx context.Context, id entity.ID) error
	// TopClients / TopSellers: pipelines fijos sobre pedidos COMPLETED,
	// agrupados por cliente/vendedor, total descendente, máximo 10.
	TopClients(ctx context.Context) ([]*ClientRanking, error)
	TopSellers(ctx context.Context) ([]*SellerRanking, error)
}
