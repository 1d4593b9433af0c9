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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre MongoDB.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(colUsers)}
}

// Create persiste un nuevo usuario. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id entity.ID) (*entity.User, error) {
	var u entity.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por email: %w", err)
	}
	return &u, nil
}
