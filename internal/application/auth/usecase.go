package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
	"github.com/tu-usuario/crm-ventas/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// RegisterUser crea un vendedor: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) RegisterUser(ctx context.Context, in dto.RegisterUserInput) (*entity.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           entity.ID(uuid.New().String()),
		Name:         in.Name,
		Surname:      in.Surname,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifica email/password y emite un JWT con los claims del vendedor.
// Tanto usuario inexistente como password incorrecto fallan con ErrInvalidCredentials.
func (uc *UseCase) Authenticate(ctx context.Context, in dto.AuthenticateInput) (*dto.TokenPayload, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	ttl := time.Duration(uc.jwtCfg.ExpHours) * time.Hour
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer,
		user.ID.String(), user.Email, user.Name, user.Surname, ttl)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPayload{Token: token}, nil
}
