package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(colProducts)}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.col.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Product, error) {
	var p entity.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": bson.M{
		"name":      product.Name,
		"price":     product.Price,
		"stock":     product.Stock,
		"updatedAt": product.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	var list []*entity.Product
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode productos: %w", err)
	}
	return list, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id entity.ID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca productos por texto sobre el índice de texto del nombre.
func (r *ProductRepo) Search(ctx context.Context, text string, limit int) ([]*entity.Product, error) {
	filter := bson.M{"$text": bson.M{"$search": text}}
	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}
	var list []*entity.Product
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode búsqueda: %w", err)
	}
	return list, nil
}

// ReserveStock descuenta quantity en una única operación condicional:
// el filtro exige stock >= quantity, así dos reservas concurrentes nunca
// pueden dejar la existencia negativa. Si el filtro no matchea se consulta
// el producto para distinguir inexistencia de stock insuficiente.
func (r *ProductRepo) ReserveStock(ctx context.Context, id entity.ID, quantity int) error {
	filter := bson.M{"_id": id, "stock": bson.M{"$gte": quantity}}
	update := bson.M{
		"$inc": bson.M{"stock": -quantity},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("reservar stock: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	p, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return &domain.InsufficientStockError{
		ProductID:   p.ID.String(),
		ProductName: p.Name,
		Requested:   quantity,
		Available:   p.Stock,
	}
}

// ReleaseStock devuelve quantity a la existencia (compensación de una reserva previa).
func (r *ProductRepo) ReleaseStock(ctx context.Context, id entity.ID, quantity int) error {
	update := bson.M{
		"$inc": bson.M{"stock": quantity},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("liberar stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
