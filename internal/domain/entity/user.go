package entity

import "time"

// User representa un vendedor del sistema. Inmutable tras el registro salvo el password.
type User struct {
	ID           ID        `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Surname      string    `bson:"surname" json:"surname"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"` // bcrypt hash, nunca plano después de persistir
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
