package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre MongoDB.
// Incluye los pipelines de agregación de reportes (mejores clientes/vendedores).
type OrderRepo struct {
	col *mongo.Collection
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{col: db.Collection(colOrders)}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if _, err := r.col.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Order, error) {
	var o entity.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &o, nil
}

// Update reemplaza los campos mutables del pedido. OwnerID nunca se toca.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{"$set": bson.M{
		"clientId":  order.ClientID,
		"lineItems": order.LineItems,
		"total":     order.Total,
		"status":    order.Status,
		"updatedAt": order.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los pedidos.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.find(ctx, bson.M{})
}

// ListByOwner devuelve los pedidos de un vendedor.
func (r *OrderRepo) ListByOwner(ctx context.Context, ownerID entity.ID) ([]*entity.Order, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID})
}

// ListByOwnerAndStatus devuelve los pedidos de un vendedor filtrados por estado.
func (r *OrderRepo) ListByOwnerAndStatus(ctx context.Context, ownerID entity.ID, status string) ([]*entity.Order, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID, "status": status})
}

func (r *OrderRepo) find(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	var list []*entity.Order
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode pedidos: %w", err)
	}
	return list, nil
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(ctx context.Context, id entity.ID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// clientRankingDoc documento intermedio del pipeline de mejores clientes.
type clientRankingDoc struct {
	ID     entity.ID       `bson:"_id"`
	Total  float64         `bson:"total"`
	Client []entity.Client `bson:"client"`
}

// TopClients agrupa pedidos COMPLETED por cliente, suma el total, resuelve el
// cliente con $lookup y devuelve los 10 mayores en orden descendente.
func (r *OrderRepo) TopClients(ctx context.Context) ([]*repository.ClientRanking, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: entity.OrderCompleted}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$clientId"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colClients},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "client"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
		{{Key: "$limit", Value: 10}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("agregar mejores clientes: %w", err)
	}
	var docs []clientRankingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode mejores clientes: %w", err)
	}
	out := make([]*repository.ClientRanking, 0, len(docs))
	for _, d := range docs {
		rk := &repository.ClientRanking{ClientID: d.ID, Total: d.Total}
		if len(d.Client) > 0 {
			c := d.Client[0]
			rk.Client = &c
		}
		out = append(out, rk)
	}
	return out, nil
}

// sellerRankingDoc documento intermedio del pipeline de mejores vendedores.
type sellerRankingDoc struct {
	ID     entity.ID     `bson:"_id"`
	Total  float64       `bson:"total"`
	Seller []entity.User `bson:"seller"`
}

// TopSellers agrupa pedidos COMPLETED por vendedor, suma el total, resuelve el
// usuario con $lookup y devuelve los 10 mayores en orden descendente.
func (r *OrderRepo) TopSellers(ctx context.Context) ([]*repository.SellerRanking, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: entity.OrderCompleted}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$ownerId"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colUsers},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "seller"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
		{{Key: "$limit", Value: 10}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("agregar mejores vendedores: %w", err)
	}
	var docs []sellerRankingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode mejores vendedores: %w", err)
	}
	out := make([]*repository.SellerRanking, 0, len(docs))
	for _, d := range docs {
		rk := &repository.SellerRanking{SellerID: d.ID, Total: d.Total}
		if len(d.Seller) > 0 {
			u := d.Seller[0]
			rk.Seller = &u
		}
		out = append(out, rk)
	}
	return out, nil
}
