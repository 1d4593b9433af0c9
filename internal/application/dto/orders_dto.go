package dto

// LineItemInput una línea de pedido: producto y cantidad.
type LineItemInput struct {
	ProductID string `mapstructure:"productId" json:"productId"`
	Quantity  int    `mapstructure:"quantity" json:"quantity"`
}

// PlaceOrderInput datos para crear un pedido.
type PlaceOrderInput struct {
	ClientID  string          `mapstructure:"clientId" json:"clientId"`
	LineItems []LineItemInput `mapstructure:"lineItems" json:"lineItems"`
	Total     float64         `mapstructure:"total" json:"total"`
	Status    string          `mapstructure:"status" json:"status"`
}

// UpdateOrderInput actualización parcial de un pedido (nil/vacío = sin cambio).
// Si LineItems viene presente, cada línea vuelve a validar y reservar stock.
type UpdateOrderInput struct {
	ClientID  *string         `mapstructure:"clientId" json:"clientId,omitempty"`
	LineItems []LineItemInput `mapstructure:"lineItems" json:"lineItems,omitempty"`
	Total     *float64        `mapstructure:"total" json:"total,omitempty"`
	Status    *string         `mapstructure:"status" json:"status,omitempty"`
}
