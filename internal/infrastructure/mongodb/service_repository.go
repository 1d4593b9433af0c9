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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre MongoDB.
type ServiceRepo struct {
	col *mongo.Collection
}

// NewServiceRepository construye el adaptador de persistencia para servicios.
func NewServiceRepository(db *mongo.Database) *ServiceRepo {
	return &ServiceRepo{col: db.Collection(colServices)}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	if _, err := r.col.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID. (nil, nil) si no existe.
func (r *ServiceRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Service, error) {
	var s entity.Service
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	return &s, nil
}

// Update reemplaza los campos editables del servicio.
func (r *ServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": service.ID}, bson.M{"$set": bson.M{
		"name":        service.Name,
		"description": service.Description,
		"category":    service.Category,
		"price":       service.Price,
		"updatedAt":   service.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update servicio: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los servicios.
func (r *ServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	var list []*entity.Service
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode servicios: %w", err)
	}
	return list, nil
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(ctx context.Context, id entity.ID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete servicio: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
