package entity

import "time"

// Service representa un servicio ofrecido. Entidad CRUD independiente, sin relaciones.
type Service struct {
	ID          ID        `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Price       float64   `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
