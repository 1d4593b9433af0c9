package entity

import "time"

// Estados válidos para Order.
const (
	OrderPending   = "PENDING"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

// ValidOrderStatus reporta si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	return s == OrderPending || s == OrderCompleted || s == OrderCancelled
}

// LineItem una línea de pedido: producto y cantidad solicitada.
type LineItem struct {
	ProductID ID  `bson:"productId" json:"productId"`
	Quantity  int `bson:"quantity" json:"quantity"`
}

// Order representa un pedido de un vendedor para uno de sus clientes.
// OwnerID es inmutable tras la creación; cada línea referencia un Product
// existente al momento de escribir el pedido.
type Order struct {
	ID        ID         `bson:"_id" json:"id"`
	ClientID  ID         `bson:"clientId" json:"clientId"`
	OwnerID   ID         `bson:"ownerId" json:"ownerId"`
	LineItems []LineItem `bson:"lineItems" json:"lineItems"`
	Total     float64    `bson:"total" json:"total"`
	Status    string     `bson:"status" json:"status"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}
