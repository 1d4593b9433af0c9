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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre MongoDB.
type ClientRepo struct {
	col *mongo.Collection
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db *mongo.Database) *ClientRepo {
	return &ClientRepo{col: db.Collection(colClients)}
}

// Create persiste un nuevo cliente. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if _, err := r.col.InsertOne(ctx, client); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id entity.ID) (*entity.Client, error) {
	var c entity.Client
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetByEmail obtiene un cliente por email. (nil, nil) si no existe.
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var c entity.Client
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente por email: %w", err)
	}
	return &c, nil
}

// Update reemplaza los campos editables del cliente. OwnerID nunca se toca.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": client.ID}, bson.M{"$set": bson.M{
		"name":      client.Name,
		"surname":   client.Surname,
		"company":   client.Company,
		"email":     client.Email,
		"phone":     client.Phone,
		"updatedAt": client.UpdatedAt,
	}})
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	return r.find(ctx, bson.M{})
}

// ListByOwner devuelve los clientes de un vendedor.
func (r *ClientRepo) ListByOwner(ctx context.Context, ownerID entity.ID) ([]*entity.Client, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID})
}

func (r *ClientRepo) find(ctx context.Context, filter bson.M) ([]*entity.Client, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	var list []*entity.Client
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode clientes: %w", err)
	}
	return list, nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id entity.ID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
