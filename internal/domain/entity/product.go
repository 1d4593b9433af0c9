package entity

import "time"

// Product representa un producto con existencia en inventario.
// Stock solo lo muta el motor de pedidos (decremento condicional) o una
// actualización administrativa directa; nunca queda por debajo de cero.
type Product struct {
	ID        ID        `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	Stock     int       `bson:"stock" json:"stock"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
