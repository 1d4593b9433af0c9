package dto

// CreateProductInput datos para crear un producto.
type CreateProductInput struct {
	Name  string  `mapstructure:"name" json:"name"`
	Price float64 `mapstructure:"price" json:"price"`
	Stock int     `mapstructure:"stock" json:"stock"`
}

// UpdateProductInput actualización parcial de un producto (nil = sin cambio).
type UpdateProductInput struct {
	Name  *string  `mapstructure:"name" json:"name,omitempty"`
	Price *float64 `mapstructure:"price" json:"price,omitempty"`
	Stock *int     `mapstructure:"stock" json:"stock,omitempty"`
}

// CreateServiceInput datos para crear un servicio.
type CreateServiceInput struct {
	Name        string  `mapstructure:"name" json:"name"`
	Description string  `mapstructure:"description" json:"description"`
	Category    string  `mapstructure:"category" json:"category"`
	Price       float64 `mapstructure:"price" json:"price"`
}

// UpdateServiceInput actualización parcial de un servicio (nil = sin cambio).
type UpdateServiceInput struct {
	Name        *string  `mapstructure:"name" json:"name,omitempty"`
	Description *string  `mapstructure:"description" json:"description,omitempty"`
	Category    *string  `mapstructure:"category" json:"category,omitempty"`
	Price       *float64 `mapstructure:"price" json:"price,omitempty"`
}
