package dto

// CreateClientInput datos para registrar un cliente del vendedor.
type CreateClientInput struct {
	Name    string `mapstructure:"name" json:"name"`
	Surname string `mapstructure:"surname" json:"surname"`
	Company string `mapstructure:"company" json:"company"`
	Email   string `mapstructure:"email" json:"email"`
	Phone   string `mapstructure:"phone" json:"phone"`
}

// UpdateClientInput actualización parcial de un cliente (nil = sin cambio).
type UpdateClientInput struct {
	Name    *string `mapstructure:"name" json:"name,omitempty"`
	Surname *string `mapstructure:"surname" json:"surname,omitempty"`
	Company *string `mapstructure:"company" json:"company,omitempty"`
	Email   *string `mapstructure:"email" json:"email,omitempty"`
	Phone   *string `mapstructure:"phone" json:"phone,omitempty"`
}
