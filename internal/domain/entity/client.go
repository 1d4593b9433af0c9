package entity

import "time"

// Client representa un cliente de un vendedor. OwnerID referencia al User
// que lo creó y es inmutable; solo el dueño puede leerlo, editarlo o borrarlo.
type Client struct {
	ID        ID        `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Surname   string    `bson:"surname" json:"surname"`
	Company   string    `bson:"company" json:"company"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	OwnerID   ID        `bson:"ownerId" json:"ownerId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
