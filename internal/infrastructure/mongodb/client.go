package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tu-usuario/crm-ventas/pkg/config"
)

// Nombres de colecciones.
const (
	colUsers    = "usuarios"
	colProducts = "productos"
	colServices = "servicios"
	colClients  = "clientes"
	colOrders   = "pedidos"
)

// Connect abre la conexión a MongoDB usando la configuración de la app y
// verifica la conectividad con un ping antes de devolver la base.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping a mongodb: %w", err)
	}

	return client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices que el dominio exige: email único en usuarios
// y clientes, e índice de texto sobre el nombre de producto para la búsqueda.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(colUsers).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return fmt.Errorf("índice email usuarios: %w", err)
	}
	if _, err := db.Collection(colClients).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return fmt.Errorf("índice email clientes: %w", err)
	}

	textName := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}},
	}
	if _, err := db.Collection(colProducts).Indexes().CreateOne(ctx, textName); err != nil {
		return fmt.Errorf("índice de texto productos: %w", err)
	}
	return nil
}
