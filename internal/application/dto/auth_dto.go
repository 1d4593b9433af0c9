package dto

// RegisterUserInput datos de registro de un vendedor.
type RegisterUserInput struct {
	Name     string `mapstructure:"name" json:"name"`
	Surname  string `mapstructure:"surname" json:"surname"`
	Email    string `mapstructure:"email" json:"email"`
	Password string `mapstructure:"password" json:"password"`
}

// AuthenticateInput credenciales de login.
type AuthenticateInput struct {
	Email    string `mapstructure:"email" json:"email"`
	Password string `mapstructure:"password" json:"password"`
}

// TokenPayload respuesta de autenticación.
type TokenPayload struct {
	Token string `json:"token"`
}
